// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/gaissmai/prefixtree"
	"github.com/gaissmai/prefixtree/keyfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config {
	return config{
		keys:       500,
		minLen:     1,
		maxLen:     6,
		probes:     100,
		iterations: 10_000,
		workers:    4,
		nested:     "reject",
		seed:       42,
	}
}

func TestLookupLoop(t *testing.T) {
	t.Parallel()

	x := prefixtree.MustNewIndex([]string{"bar", "foo"})
	probes := []string{"foobar", "zoo", "bar", "b"}

	// two of four probes hit, 1000 lookups
	hits, err := lookupLoop(context.Background(), x, probes, 1_000, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(500), hits)
}

func TestLookupLoopCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	x := prefixtree.MustNewIndex([]string{"foo"})
	_, err := lookupLoop(ctx, x, []string{"foo"}, 100, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRandom(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.dense = true
	cfg.keysOut = filepath.Join(t.TempDir(), "keys.txt"+keyfile.ZstdExt)
	cfg.cpuProfile = filepath.Join(t.TempDir(), "cpu.pprof")

	require.NoError(t, run(context.Background(), cfg, slog.New(slog.DiscardHandler)))

	// the written key list reads back as the same table
	lines, err := keyfile.ReadFile(cfg.keysOut)
	require.NoError(t, err)

	cfg2 := testConfig()
	cfg2.in = cfg.keysOut
	gold, err := loadTable(cfg2, prefixtree.NestedReject, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	assert.Len(t, gold, len(lines))

	require.NoError(t, run(context.Background(), cfg2, slog.New(slog.DiscardHandler)))
}

func TestRunNested(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.maxLen = 2
	cfg.nested = "longest"
	require.NoError(t, run(context.Background(), cfg, slog.New(slog.DiscardHandler)))

	cfg.nested = "reject"
	cfg.in = filepath.Join(t.TempDir(), "missing.txt")
	assert.Error(t, run(context.Background(), cfg, slog.New(slog.DiscardHandler)))
}

func TestRunInvalidConfig(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.DiscardHandler)

	cfg := testConfig()
	cfg.workers = 0
	assert.Error(t, run(context.Background(), cfg, logger))

	cfg = testConfig()
	cfg.nested = "first"
	assert.Error(t, run(context.Background(), cfg, logger))
}
