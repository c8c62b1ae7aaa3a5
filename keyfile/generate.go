// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keyfile

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"strconv"
	"text/template"

	"github.com/gaissmai/prefixtree"
)

// ErrDuplicateKey is returned by Generate for keys listed twice.
var ErrDuplicateKey = errors.New("keyfile: duplicate key")

// Config controls the generated source.
type Config struct {
	Package string // package name of the generated file
	Var     string // name of the table variable
	Source  string // name of the key list, for the header

	// Values declares a prefixtree.Table[string] with the line values,
	// otherwise a prefixtree.Index.
	Values bool

	Nested prefixtree.NestedPolicy

	// Logger receives the compile statistics, may be nil.
	Logger *slog.Logger
}

// Generate validates lines as a table and writes gofmt'ed Go source
// declaring it as package level variable, together with its digest.
//
// The lines may be in any order, duplicate keys are an error.
func Generate(w io.Writer, lines []Line, cfg Config) error {
	if cfg.Package == "" || cfg.Var == "" {
		return errors.New("keyfile: package and variable name required")
	}

	var b prefixtree.Builder[string]
	for _, line := range lines {
		if b.Insert(line.Key, line.Value) {
			return fmt.Errorf("%w: %q at line %d", ErrDuplicateKey, line.Key, line.LineNo)
		}
	}

	// fail now, not at init time of the generated package
	tbl, err := b.Build(prefixtree.WithNestedKeys(cfg.Nested), prefixtree.WithLogger(cfg.Logger))
	if err != nil {
		return err
	}

	data := genData{
		Config:  cfg,
		Digest:  tbl.Digest().String(),
		Entries: b.Entries(),
	}
	if cfg.Nested != prefixtree.NestedReject {
		data.Option = "prefixtree.WithNestedKeys(prefixtree." + policyConst[cfg.Nested] + ")"
	}

	buf := new(bytes.Buffer)
	if err := genTemplate.Execute(buf, data); err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("keyfile: format generated source: %w", err)
	}

	_, err = w.Write(src)
	return err
}

var policyConst = map[prefixtree.NestedPolicy]string{
	prefixtree.NestedReject:   "NestedReject",
	prefixtree.NestedLongest:  "NestedLongest",
	prefixtree.NestedShortest: "NestedShortest",
}

type genData struct {
	Config
	Digest  string
	Option  string
	Entries []prefixtree.Entry[string]
}

var genTemplate = template.Must(template.New("table").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	Parse(`// Code generated by prefixgen{{with .Source}} from file {{quote .}}{{end}}; DO NOT EDIT.

package {{.Package}}

import "github.com/gaissmai/prefixtree"

// {{.Var}}Digest is the digest of the keys of {{.Var}}.
const {{.Var}}Digest = {{quote .Digest}}

{{if .Values -}}
var {{.Var}} = prefixtree.MustNew([]prefixtree.Entry[string]{
{{- range .Entries}}
	{Key: {{quote .Key}}, Value: {{quote .Value}}},
{{- end}}
}{{with .Option}}, {{.}}{{end}})
{{- else -}}
var {{.Var}} = prefixtree.MustNewIndex([]string{
{{- range .Entries}}
	{{quote .Key}},
{{- end}}
}{{with .Option}}, {{.}}{{end}})
{{- end}}
`))
