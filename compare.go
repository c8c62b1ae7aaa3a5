// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import "cmp"

// Bytes is the type set of lookup inputs, lookups on strings
// and byte slices are both allocation free.
type Bytes interface {
	~string | ~[]byte
}

// Compare returns an integer comparing x and y bytewise.
// The result is 0 if x == y, -1 if x < y, and +1 if x > y.
//
// Bytes are compared as unsigned values, the first difference decides.
// If one sequence is exhausted first, it is the smaller one. Hence the
// empty sequence is the global minimum and a strict prefix orders
// before all of its extensions.
func Compare[X, Y Bytes](x X, y Y) int {
	for i := range min(len(x), len(y)) {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return cmp.Compare(len(x), len(y))
}

// Less reports whether x orders before y, see [Compare].
func Less[X, Y Bytes](x X, y Y) bool {
	return Compare(x, y) < 0
}

// HasPrefix reports whether key is a byte-wise prefix of input.
func HasPrefix[B Bytes](input B, key string) bool {
	if len(input) < len(key) {
		return false
	}
	for i := range len(key) {
		if input[i] != key[i] {
			return false
		}
	}
	return true
}
