// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Profile runs a lookup loop over a compiled prefix table for pprof.
//
// The table is either read from a key list or generated at random, with
// keys drawn from the full byte alphabet. Lookups run on parallel
// workers, they share the immutable table without locking.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"slices"
	"sync/atomic"
	"time"

	"github.com/gaissmai/prefixtree"
	"github.com/gaissmai/prefixtree/internal/golden"
	"github.com/gaissmai/prefixtree/keyfile"
	"golang.org/x/sync/errgroup"
)

type config struct {
	in         string
	keysOut    string
	keys       int
	minLen     int
	maxLen     int
	probes     int
	iterations int
	workers    int
	dense      bool
	nested     string
	seed       uint64
	cpuProfile string
	memProfile string
	verbose    bool
}

// sink prevents the compiler from dropping the lookups
var sink atomic.Int64

func main() {
	cfg := parseFlags(os.Args[1:])

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("profile failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func parseFlags(args []string) config {
	var cfg config

	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	fs.StringVar(&cfg.in, "in", "", "key list to profile, random keys if empty")
	fs.StringVar(&cfg.keysOut, "keys-out", "", "write the profiled keys to this key list, .zst compresses")
	fs.IntVar(&cfg.keys, "keys", 10_000, "number of random keys")
	fs.IntVar(&cfg.minLen, "min-len", 1, "minimum random key length")
	fs.IntVar(&cfg.maxLen, "max-len", 16, "maximum random key length")
	fs.IntVar(&cfg.probes, "probes", 1_000, "number of random probes, besides the keys and their prefixes")
	fs.IntVar(&cfg.iterations, "iterations", 100_000_000, "total number of lookups")
	fs.IntVar(&cfg.workers, "workers", runtime.GOMAXPROCS(0), "parallel lookup workers")
	fs.BoolVar(&cfg.dense, "dense", false, "dense fanout dispatch")
	fs.StringVar(&cfg.nested, "nested", "reject", "nested key policy: reject, longest or shortest")
	fs.Uint64Var(&cfg.seed, "seed", 42, "random seed")
	fs.StringVar(&cfg.cpuProfile, "cpuprofile", "", "write cpu profile to file")
	fs.StringVar(&cfg.memProfile, "memprofile", "", "write heap profile to file")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	_ = fs.Parse(args)
	return cfg
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	if cfg.workers < 1 || cfg.iterations < 0 {
		return fmt.Errorf("invalid workers %d or iterations %d", cfg.workers, cfg.iterations)
	}

	policy, err := prefixtree.ParseNestedPolicy(cfg.nested)
	if err != nil {
		return err
	}

	prng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))

	gold, err := loadTable(cfg, policy, prng)
	if err != nil {
		return err
	}

	if cfg.keysOut != "" {
		if err := writeKeys(cfg.keysOut, gold); err != nil {
			return err
		}
	}

	start := time.Now()
	x, err := prefixtree.NewIndex(gold.Keys(),
		prefixtree.WithNestedKeys(policy),
		prefixtree.WithDenseDispatch(cfg.dense),
		prefixtree.WithLogger(logger))
	if err != nil {
		return err
	}

	s := x.Stats()
	logger.Info("table compiled",
		slog.Int("keys", s.Keys),
		slog.Int("nodes", s.Nodes),
		slog.Int("max_depth", s.MaxDepth),
		slog.String("digest", x.Digest().String()),
		slog.Duration("elapsed", time.Since(start)))

	probes := gold.Probes(prng, cfg.probes)
	if len(probes) == 0 {
		return errors.New("no probes")
	}

	if cfg.cpuProfile != "" {
		f, err := os.Create(cfg.cpuProfile)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	start = time.Now()
	hits, err := lookupLoop(ctx, x, probes, cfg.iterations, cfg.workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Info("lookups done",
		slog.Int("lookups", cfg.iterations),
		slog.Int64("hits", hits),
		slog.Int("workers", cfg.workers),
		slog.Duration("elapsed", elapsed),
		slog.Float64("ns/lookup", float64(elapsed.Nanoseconds())*float64(cfg.workers)/float64(max(cfg.iterations, 1))))

	if cfg.memProfile != "" {
		f, err := os.Create(cfg.memProfile)
		if err != nil {
			return err
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}

	return nil
}

// loadTable reads the key list or generates random keys.
func loadTable(cfg config, policy prefixtree.NestedPolicy, prng *rand.Rand) (golden.Table[int], error) {
	if cfg.in == "" {
		return golden.Random(prng, cfg.keys, cfg.minLen, cfg.maxLen, policy != prefixtree.NestedReject), nil
	}

	lines, err := keyfile.ReadFile(cfg.in)
	if err != nil {
		return nil, err
	}

	var b prefixtree.Builder[int]
	for i, line := range lines {
		b.Insert(line.Key, i)
	}

	var gold golden.Table[int]
	for e := range b.All() {
		gold = append(gold, golden.Item[int]{Key: e.Key, Val: e.Value})
	}
	return gold, nil
}

func writeKeys(path string, gold golden.Table[int]) error {
	w, err := keyfile.Create(path)
	if err != nil {
		return err
	}

	lines := make([]keyfile.Line, 0, len(gold))
	for _, item := range gold {
		lines = append(lines, keyfile.Line{Key: item.Key})
	}

	if err := keyfile.Write(w, slices.Values(lines)); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// lookupLoop spreads n lookups over the workers, cycling through the
// probes, and returns the number of hits.
func lookupLoop(ctx context.Context, x *prefixtree.Index, probes []string, n, workers int) (int64, error) {
	var hits atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		share := n / workers
		if w < n%workers {
			share++
		}

		g.Go(func() error {
			var local, sum int64
			for i := range share {
				// check for cancellation now and then, not per lookup
				if i&0xffff == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				idx := x.Lookup(probes[(i+w)%len(probes)])
				if idx != x.Size() {
					local++
				}
				sum += int64(idx)
			}

			hits.Add(local)
			sink.Add(sum)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return hits.Load(), err
	}
	return hits.Load(), nil
}
