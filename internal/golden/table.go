// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden implements a simple and slow prefix table,
// a slice of keys and values scanned linearly, as a golden
// reference for the compiled matchers.
package golden

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Table is a simple and slow prefix table.
type Table[V any] []Item[V]

// Item is a key with its payload.
type Item[V any] struct {
	Key string
	Val V
}

func (g Item[V]) String() string {
	return fmt.Sprintf("(%q, %v)", g.Key, g.Val)
}

// Insert key with val, an existing key gets the new val.
func (t *Table[V]) Insert(key string, val V) {
	for i, item := range *t {
		if item.Key == key {
			(*t)[i].Val = val // de-dupe
			return
		}
	}
	*t = append(*t, Item[V]{key, val})
}

// Sort the table by key, bytewise.
func (t Table[V]) Sort() {
	slices.SortFunc(t, func(a, b Item[V]) int {
		return strings.Compare(a.Key, b.Key)
	})
}

// Keys returns the keys in table order.
func (t Table[V]) Keys() []string {
	keys := make([]string, 0, len(t))
	for _, item := range t {
		keys = append(keys, item.Key)
	}
	return keys
}

// LookupShortest returns the index of the shortest key that is a prefix
// of input, or len(t).
func (t Table[V]) LookupShortest(input string) int {
	best := len(t)
	for i, item := range t {
		if strings.HasPrefix(input, item.Key) && (best == len(t) || len(item.Key) < len(t[best].Key)) {
			best = i
		}
	}
	return best
}

// LookupLongest returns the index of the longest key that is a prefix
// of input, or len(t).
func (t Table[V]) LookupLongest(input string) int {
	best := len(t)
	for i, item := range t {
		if strings.HasPrefix(input, item.Key) && (best == len(t) || len(item.Key) > len(t[best].Key)) {
			best = i
		}
	}
	return best
}

// HasNested reports whether some key is a strict prefix of another key.
func (t Table[V]) HasNested() bool {
	for i, a := range t {
		for j, b := range t {
			if i != j && strings.HasPrefix(b.Key, a.Key) {
				return true
			}
		}
	}
	return false
}

// Random returns a sorted table with up to n random keys of length
// [minLen, maxLen], values are the insertion counters.
//
// Without nested, keys that are a prefix of another key are dropped,
// the result is then valid for the default nested key policy.
func Random(prng *rand.Rand, n, minLen, maxLen int, nested bool) Table[int] {
	var t Table[int]
	for i := range n {
		t.Insert(RandomKey(prng, minLen, maxLen), i)
	}
	t.Sort()

	if nested {
		return t
	}

	// sorted: a key prefixing any later key prefixes its successor
	out := t[:0]
	for i, item := range t {
		if i+1 < len(t) && strings.HasPrefix(t[i+1].Key, item.Key) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// RandomKey returns a random key of length [minLen, maxLen],
// drawn from the full byte alphabet, zero bytes included.
func RandomKey(prng *rand.Rand, minLen, maxLen int) string {
	b := make([]byte, minLen+prng.IntN(maxLen-minLen+1))
	for i := range b {
		b[i] = byte(prng.IntN(256))
	}
	return string(b)
}

// Probes returns inputs for differential tests: every key, every key with
// a random suffix, every strict prefix of every key and some random keys.
func (t Table[V]) Probes(prng *rand.Rand, random int) []string {
	var probes []string
	for _, item := range t {
		probes = append(probes, item.Key, item.Key+RandomKey(prng, 1, 4))
		for j := range len(item.Key) {
			probes = append(probes, item.Key[:j])
		}
	}
	for range random {
		probes = append(probes, RandomKey(prng, 0, 8))
	}
	return probes
}
