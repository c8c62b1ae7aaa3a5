// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package keyfile reads and writes key lists and generates Go source
// declaring compiled prefix tables from them.
//
// A key list has one entry per line, an optional value follows the key
// after a tab:
//
//	# comment
//	GET /	get
//	"\x89PNG"	png
//	"# not a comment"
//
// Keys and values starting with a double quote are Go string literals
// and may carry arbitrary bytes. Blank lines and lines starting with #
// are skipped, CRLF line endings are accepted.
package keyfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by all parse errors.
var ErrSyntax = errors.New("keyfile: syntax error")

// Line is a parsed key list entry.
type Line struct {
	Key      string
	Value    string
	HasValue bool
	LineNo   int // 1-based
}

// Parse reads a key list from r, in file order.
func Parse(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSuffix(scanner.Text(), "\r")

		if text == "" || text[0] == '#' {
			continue
		}

		line, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNo, err)
		}
		line.LineNo = lineNo

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func parseLine(text string) (line Line, err error) {
	key, rest, err := field(text)
	if err != nil {
		return line, fmt.Errorf("key: %w", err)
	}
	line.Key = key

	if rest == "" {
		return line, nil
	}

	if rest[0] != '\t' {
		return line, fmt.Errorf("unexpected %q after quoted key", rest)
	}

	val, rest, err := field(rest[1:])
	if err != nil {
		return line, fmt.Errorf("value: %w", err)
	}
	if rest != "" {
		return line, fmt.Errorf("unexpected %q after value", rest)
	}

	line.Value, line.HasValue = val, true
	return line, nil
}

// field splits the leading key or value off text. A plain field
// ends at the first tab, a quoted field after its closing quote.
func field(text string) (string, string, error) {
	if !strings.HasPrefix(text, `"`) {
		before, after, found := strings.Cut(text, "\t")
		if found {
			after = "\t" + after
		}
		return before, after, nil
	}

	quoted, err := strconv.QuotedPrefix(text)
	if err != nil {
		return "", "", err
	}

	s, err := strconv.Unquote(quoted)
	if err != nil {
		return "", "", err
	}
	return s, text[len(quoted):], nil
}

// Write writes lines as key list to w, keys and values are quoted
// when they would not read back verbatim.
func Write(w io.Writer, lines iter.Seq[Line]) error {
	bw := bufio.NewWriter(w)

	for line := range lines {
		bw.WriteString(quoteKey(line.Key))
		if line.HasValue {
			bw.WriteByte('\t')
			bw.WriteString(quoteValue(line.Value))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func quoteKey(s string) string {
	if s == "" || s[0] == '#' || needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func quoteValue(s string) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

// needsQuote reports whether s would not survive a plain round trip.
func needsQuote(s string) bool {
	if strings.HasPrefix(s, `"`) {
		return true
	}
	for i := range len(s) {
		if c := s[i]; c < ' ' || c >= 0x7f {
			return true
		}
	}
	return false
}
