// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gaissmai/prefixtree/internal/bisect"
)

// compiler walks a validated table once and emits the decision tree.
type compiler struct {
	keys      []string
	maxLen    int
	withDense bool

	nodes []node
	dense [][256]int32
}

// compile builds the decision tree of m.keys, the keys are validated.
func (m *matcher) compile(cfg config) {
	if len(m.keys) == 0 {
		return
	}

	c := compiler{
		keys:      m.keys,
		maxLen:    m.maxLen,
		withDense: cfg.dense,
	}
	c.compileRec(0, len(m.keys), 0)

	m.nodes = c.nodes
	m.dense = c.dense

	if cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		s := m.Stats()
		cfg.logger.Debug("prefixtree compiled",
			slog.Int("keys", s.Keys),
			slog.Int("nodes", s.Nodes),
			slog.Int("fanout", s.Fanout),
			slog.Int("max_fanout", s.MaxFanout),
			slog.Int("max_key_len", m.maxLen),
			slog.String("nested", m.policy.String()),
			slog.Bool("dense", cfg.dense))
	}
}

// compileRec emits the node for state (lo, hi, col) and all its
// descendants, it returns the node index.
//
// Fail states, an empty range or a column beyond the longest key,
// never get a node: the parent has no child for them.
func (c *compiler) compileRec(lo, hi, col int) int32 {
	if hi <= lo || col > c.maxLen {
		panic(fmt.Sprintf("logic error, compile state [%d:%d) col %d", lo, hi, col))
	}

	idx := int32(len(c.nodes))
	c.nodes = append(c.nodes, node{
		col:    int32(col),
		lo:     int32(lo),
		hi:     int32(hi),
		accept: noNode,
		next:   noNode,
		dense:  noNode,
	})

	// a nested key, fully consumed at this column, sorts first
	if hi-lo > 1 && len(c.keys[lo]) == col {
		c.nodes[idx].accept = int32(lo)
		lo++
	}

	// single candidate
	if hi == lo+1 {
		c.nodes[idx].kind = leafNode
		c.nodes[idx].lo = int32(lo)
		return idx
	}

	sc, ok1 := bisect.Smallest(c.keys, lo, hi, col)
	mc, ok2 := bisect.Largest(c.keys, lo, hi, col)
	if !ok1 || !ok2 {
		panic(fmt.Sprintf("logic error, no byte at col %d in [%d:%d)", col, lo, hi))
	}

	// all candidates share the byte at col
	if sc == mc {
		next := c.compileRec(
			bisect.LowerBound(c.keys, lo, hi, col, sc),
			bisect.UpperBound(c.keys, lo, hi, col, sc),
			col+1)

		// c.nodes may have grown, index again
		c.nodes[idx].kind = narrowNode
		c.nodes[idx].char = sc
		c.nodes[idx].next = next
		return idx
	}

	// fanout over the live alphabet
	c.nodes[idx].kind = fanoutNode

	alphabet := bisect.Alphabet(c.keys, lo, hi, col)
	for _, ch := range alphabet.All() {
		kid := c.compileRec(
			bisect.LowerBound(c.keys, lo, hi, col, ch),
			bisect.UpperBound(c.keys, lo, hi, col, ch),
			col+1)

		c.nodes[idx].kids.InsertAt(ch, kid)
	}
	c.nodes[idx].kids.Compact()

	if c.withDense {
		var tbl [256]int32
		for i := range tbl {
			tbl[i] = noNode
		}
		for i, ch := range alphabet.All() {
			tbl[ch] = c.nodes[idx].kids.Items[i]
		}

		c.nodes[idx].dense = int32(len(c.dense))
		c.dense = append(c.dense, tbl)
	}

	return idx
}
