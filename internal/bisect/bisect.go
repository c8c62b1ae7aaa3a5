// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bisect implements the range primitives of the decision tree
// compiler.
//
// All functions operate on a sorted slice of keys, a half-open index
// range [lo, hi) and a column i. The caller guarantees that all keys in
// the range agree on the bytes before column i. By the total order of
// the keys, the range is then grouped contiguously by the byte at column
// i, with at most one key of length i, sorted first.
//
// Every primitive is a balanced divide and conquer over the range,
// recursion depth is log2(hi-lo). The fail sentinel is len(keys).
package bisect

import (
	"fmt"

	"github.com/gaissmai/prefixtree/internal/bitset"
)

// At returns the byte at column i of key.
// Reading past the end of a key is a usage error, At panics.
func At(key string, i int) byte {
	if i < 0 || i >= len(key) {
		panic(fmt.Sprintf("column %d out of range for key of length %d", i, len(key)))
	}
	return key[i]
}

// mid of [lo, hi), never overflows.
func mid(lo, hi int) int {
	return int(uint(lo+hi) >> 1)
}

// Contains reports whether some key in [lo, hi) has byte c at column i.
func Contains(keys []string, lo, hi, i int, c byte) bool {
	switch {
	case lo >= hi:
		return false
	case lo+1 == hi:
		return len(keys[lo]) > i && keys[lo][i] == c
	}

	m := mid(lo, hi)
	return Contains(keys, lo, m, i, c) || Contains(keys, m, hi, i, c)
}

// Smallest returns the minimum byte at column i among the keys in
// [lo, hi) long enough to have one. ok is false if there is no such key.
func Smallest(keys []string, lo, hi, i int) (c byte, ok bool) {
	if x := limiting(keys, lo, hi, i, lessThan); x != len(keys) {
		return At(keys[x], i), true
	}
	return
}

// Largest returns the maximum byte at column i among the keys in
// [lo, hi) long enough to have one. ok is false if there is no such key.
func Largest(keys []string, lo, hi, i int) (c byte, ok bool) {
	if x := limiting(keys, lo, hi, i, moreThan); x != len(keys) {
		return At(keys[x], i), true
	}
	return
}

func lessThan(x, y byte) bool { return x < y }
func moreThan(x, y byte) bool { return y < x }

// limiting returns the index of the key whose byte at column i wins
// under cmp, or the fail sentinel.
func limiting(keys []string, lo, hi, i int, cmp func(x, y byte) bool) int {
	fail := len(keys)

	switch {
	case lo >= hi:
		return fail
	case lo+1 == hi:
		if len(keys[lo]) > i {
			return lo
		}
		return fail
	}

	m := mid(lo, hi)
	x := limiting(keys, lo, m, i, cmp)
	y := limiting(keys, m, hi, i, cmp)

	switch {
	case x == fail:
		return y
	case y == fail:
		return x
	case cmp(keys[y][i], keys[x][i]):
		return y
	default:
		return x
	}
}

// LowerBound returns the first index in [lo, hi) whose key has byte c
// at column i, or the fail sentinel if c does not occur.
func LowerBound(keys []string, lo, hi, i int, c byte) int {
	switch {
	case lo >= hi:
		return len(keys)
	case lo+1 == hi:
		if Contains(keys, lo, hi, i, c) {
			return lo
		}
		return len(keys)
	}

	m := mid(lo, hi)
	switch {
	case Contains(keys, lo, m, i, c):
		return LowerBound(keys, lo, m, i, c)
	case Contains(keys, m, hi, i, c):
		return LowerBound(keys, m, hi, i, c)
	default:
		return len(keys)
	}
}

// UpperBound returns one past the last index in [lo, hi) whose key has
// byte c at column i, or the fail sentinel if c does not occur.
func UpperBound(keys []string, lo, hi, i int, c byte) int {
	switch {
	case lo >= hi:
		return len(keys)
	case lo+1 == hi:
		if Contains(keys, lo, hi, i, c) {
			return hi
		}
		return len(keys)
	}

	m := mid(lo, hi)
	switch {
	case Contains(keys, m, hi, i, c):
		return UpperBound(keys, m, hi, i, c)
	case Contains(keys, lo, m, i, c):
		return UpperBound(keys, lo, m, i, c)
	default:
		return len(keys)
	}
}

// Alphabet returns the set of bytes occurring at column i in [lo, hi).
//
// The range is walked group by group: the first key of a group names
// the byte, UpperBound skips the rest of the group.
func Alphabet(keys []string, lo, hi, i int) (set bitset.BitSet256) {
	for lo < hi {
		if len(keys[lo]) <= i {
			lo++
			continue
		}

		c := keys[lo][i]
		set.Set(c)
		lo = UpperBound(keys, lo, hi, i, c)
	}
	return
}

// MaxLen returns the length of the longest key in [lo, hi), 0 for an
// empty range.
func MaxLen(keys []string, lo, hi int) int {
	switch {
	case lo >= hi:
		return 0
	case lo+1 == hi:
		return len(keys[lo])
	}

	m := mid(lo, hi)
	return max(MaxLen(keys, lo, m), MaxLen(keys, m, hi))
}
