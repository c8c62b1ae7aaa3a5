// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"fmt"
	"iter"
)

// matcher is the compiled core shared by Index and Table.
type matcher struct {
	keys   []string
	maxLen int
	policy NestedPolicy

	// decision tree, root at index 0, empty for an empty table
	nodes []node

	// dispatch arrays of fanout nodes with dense dispatch
	dense [][256]int32
}

// newMatcher validates and compiles a copy of keys.
func newMatcher(keys []string, cfg config) (matcher, error) {
	if err := validate(keys, cfg.nested); err != nil {
		return matcher{}, err
	}

	m := matcher{
		keys:   append([]string(nil), keys...),
		maxLen: maxKeyLen(keys),
		policy: cfg.nested,
	}
	m.compile(cfg)

	return m, nil
}

// Matcher is implemented by [*Index] and [*Table].
type Matcher interface {
	Size() int
	Get(i int) string
	core() *matcher
}

func (m *matcher) core() *matcher {
	return m
}

// LookupIndex returns the index of the key that is a prefix of input,
// or the fail sentinel m.Size(). It accepts any string or byte slice
// type without conversion.
func LookupIndex[B Bytes](m Matcher, input B) int {
	return lookup(m.core(), input)
}

// lookup walks the decision tree with the input bytes.
func lookup[B Bytes](m *matcher, input B) int {
	fail := len(m.keys)
	if len(m.nodes) == 0 {
		return fail
	}

	// the last nested key consumed on the way down
	best := fail

	for idx := int32(0); ; {
		n := &m.nodes[idx]
		col := int(n.col)

		if n.accept != noNode {
			if m.policy == NestedShortest {
				return int(n.accept)
			}
			best = int(n.accept)
		}

		switch n.kind {
		case leafNode:
			key := m.keys[n.lo]
			if len(input) < len(key) {
				return best
			}
			for i := col; i < len(key); i++ {
				if input[i] != key[i] {
					return best
				}
			}
			return int(n.lo)

		case narrowNode:
			if col >= len(input) || input[col] != n.char {
				return best
			}
			idx = n.next

		case fanoutNode:
			if col >= len(input) {
				return best
			}
			c := input[col]

			if n.dense != noNode {
				if idx = m.dense[n.dense][c]; idx == noNode {
					return best
				}
				continue
			}

			if !n.kids.Test(c) {
				return best
			}
			idx = n.kids.MustGet(c)

		default:
			panic("logic error, wrong node type")
		}
	}
}

// Size returns the number of keys, it is also the fail sentinel.
func (m *matcher) Size() int {
	return len(m.keys)
}

// Fail returns the sentinel returned by failed lookups, equal to Size.
func (m *matcher) Fail() int {
	return len(m.keys)
}

// Get returns the key at index i, for diagnostics.
// It panics if i is out of range.
func (m *matcher) Get(i int) string {
	if i < 0 || i >= len(m.keys) {
		panic(fmt.Sprintf("index %d out of range [0:%d)", i, len(m.keys)))
	}
	return m.keys[i]
}

// MaxKeyLen returns the length of the longest key.
func (m *matcher) MaxKeyLen() int {
	return m.maxLen
}

// NestedPolicy returns the nested key policy the matcher was built with.
func (m *matcher) NestedPolicy() NestedPolicy {
	return m.policy
}

// Keys returns an iterator over the indices and keys in ascending order.
func (m *matcher) Keys() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, key := range m.keys {
			if !yield(i, key) {
				return
			}
		}
	}
}
