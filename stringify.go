// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gaissmai/prefixtree/internal/value"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Index.Fprint].
func (x *Index) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := x.Fprint(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// String returns the decision tree diagram, see [Index.Fprint].
// If Fprint returns an error, String panics.
func (x *Index) String() string {
	w := new(strings.Builder)
	if err := x.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes a hierarchical diagram of the compiled decision tree
// to w. Edges are labelled with the input byte they consume, the
// nodes with kind, column and the candidate range:
//
//	▼ fanout col:0 [0:3)
//	├─ "b" leaf col:1 [0] "barz"
//	├─ "f" leaf col:1 [1] "foo"
//	└─ "w" leaf col:1 [2] "wombat"
func (x *Index) Fprint(w io.Writer) error {
	return x.fprint(w, func(i int) string {
		return strconv.Quote(x.keys[i])
	})
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Table.Fprint].
func (t *Table[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// String returns the decision tree diagram, see [Table.Fprint].
// If Fprint returns an error, String panics.
func (t *Table[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes a hierarchical diagram of the compiled decision tree
// with default formatted values to w, see [Index.Fprint].
//
//	▼ fanout col:0 [0:3)
//	├─ "b" leaf col:1 [0] "barz" (V)
//	├─ "f" leaf col:1 [1] "foo" (V)
//	└─ "w" leaf col:1 [2] "wombat" (V)
func (t *Table[V]) Fprint(w io.Writer) error {
	return t.fprint(w, func(i int) string {
		s := strconv.Quote(t.keys[i])
		if v := value.Sprint(t.values[i]); v != "" {
			s += " (" + v + ")"
		}
		return s
	})
}

// fprint writes the tree diagram, label formats the entry at index i.
func (m *matcher) fprint(w io.Writer, label func(int) string) error {
	if len(m.nodes) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼ "); err != nil {
		return err
	}
	return m.fprintRec(w, 0, "", label)
}

// fprintRec writes the node at idx, the edge label is already written,
// then all children with pad as indentation.
func (m *matcher) fprintRec(w io.Writer, idx int32, pad string, label func(int) string) error {
	n := &m.nodes[idx]

	var line string
	switch n.kind {
	case leafNode:
		line = fmt.Sprintf("leaf col:%d [%d] %s", n.col, n.lo, label(int(n.lo)))
	default:
		line = fmt.Sprintf("%s col:%d [%d:%d)", n.kind, n.col, n.lo, n.hi)
	}
	if n.accept != noNode {
		line += fmt.Sprintf(" accept [%d] %s", n.accept, label(int(n.accept)))
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	// children with their edge bytes
	var chars []byte
	var kids []int32

	switch n.kind {
	case narrowNode:
		chars, kids = []byte{n.char}, []int32{n.next}
	case fanoutNode:
		chars, kids = n.kids.All(), n.kids.Items
	}

	for i, kid := range kids {
		glyph, spacer := "├─ ", "│  "
		if i == len(kids)-1 {
			glyph, spacer = "└─ ", "   "
		}

		if _, err := fmt.Fprintf(w, "%s%s%s ", pad, glyph, quoteByte(chars[i])); err != nil {
			return err
		}
		if err := m.fprintRec(w, kid, pad+spacer, label); err != nil {
			return err
		}
	}

	return nil
}

// quoteByte returns c as double quoted, ASCII only Go string literal.
func quoteByte(c byte) string {
	return strconv.QuoteToASCII(string([]byte{c}))
}

// quoteBytes returns the bytes as list of quoted bytes.
func quoteBytes(cs []byte) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, quoteByte(c))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
