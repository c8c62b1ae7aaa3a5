// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Prefixgen generates Go source declaring a compiled prefix table from
// a key list, see package keyfile for the format.
//
// Usage:
//
//	//go:generate go run github.com/gaissmai/prefixtree/cmd/prefixgen -in methods.txt -out methods_gen.go -pkg http -var methods
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gaissmai/prefixtree"
	"github.com/gaissmai/prefixtree/keyfile"
)

type config struct {
	in      string
	out     string
	pkg     string
	varName string
	values  bool
	nested  string
	verbose bool
}

func main() {
	cfg := parseFlags(os.Args[1:])

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("prefixgen failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func parseFlags(args []string) config {
	var cfg config

	fs := flag.NewFlagSet("prefixgen", flag.ExitOnError)
	fs.StringVar(&cfg.in, "in", "", "key list, .zst files are decompressed")
	fs.StringVar(&cfg.out, "out", "", "generated Go file, stdout if empty")
	fs.StringVar(&cfg.pkg, "pkg", os.Getenv("GOPACKAGE"), "package name, default $GOPACKAGE")
	fs.StringVar(&cfg.varName, "var", "", "name of the table variable")
	fs.BoolVar(&cfg.values, "values", false, "declare a Table[string] with the line values, not an Index")
	fs.StringVar(&cfg.nested, "nested", "reject", "nested key policy: reject, longest or shortest")
	fs.BoolVar(&cfg.verbose, "v", false, "log compile statistics")

	_ = fs.Parse(args)
	return cfg
}

func run(cfg config, stdout io.Writer, logger *slog.Logger) error {
	if cfg.in == "" || cfg.varName == "" {
		return errors.New("-in and -var are required")
	}

	policy, err := prefixtree.ParseNestedPolicy(cfg.nested)
	if err != nil {
		return err
	}

	lines, err := keyfile.ReadFile(cfg.in)
	if err != nil {
		return err
	}
	logger.Debug("key list read", slog.String("file", cfg.in), slog.Int("keys", len(lines)))

	buf := new(bytes.Buffer)
	err = keyfile.Generate(buf, lines, keyfile.Config{
		Package: cfg.pkg,
		Var:     cfg.varName,
		Source:  filepath.Base(cfg.in),
		Values:  cfg.values,
		Nested:  policy,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	if cfg.out == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(cfg.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write generated source: %w", err)
	}
	logger.Info("table generated", slog.String("out", cfg.out), slog.Int("keys", len(lines)))

	return nil
}
