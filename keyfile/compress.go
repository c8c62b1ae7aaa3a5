// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keyfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ZstdExt is the file extension of zstd compressed key lists.
const ZstdExt = ".zst"

// readCloser closes the decoder and the file.
type readCloser struct {
	*zstd.Decoder
	file *os.File
}

func (r readCloser) Close() error {
	r.Decoder.Close()
	return r.file.Close()
}

// Open opens the key list at path, files ending in ".zst" are
// decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ZstdExt) {
		return file, nil
	}

	dec, err := zstd.NewReader(file, zstd.WithDecoderConcurrency(1))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("keyfile: zstd reader: %w", err)
	}
	return readCloser{Decoder: dec, file: file}, nil
}

// ReadFile parses the key list at path, see [Open] and [Parse].
func ReadFile(path string) ([]Line, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	lines, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// writeCloser closes the encoder and the file.
type writeCloser struct {
	*zstd.Encoder
	file *os.File
}

func (w writeCloser) Close() error {
	return errors.Join(w.Encoder.Close(), w.file.Close())
}

// Create creates the key list at path, files ending in ".zst" are
// compressed transparently.
func Create(path string) (io.WriteCloser, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ZstdExt) {
		return file, nil
	}

	enc, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("keyfile: zstd writer: %w", err)
	}
	return writeCloser{Encoder: enc, file: file}, nil
}
