// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a special sparse array
// with popcount compression for max. 256 items,
// keyed by a byte.
package sparse

import (
	"github.com/gaissmai/prefixtree/internal/bitset"
)

// Array256 is a generic implementation of a sparse array
// with popcount compression for max. 256 items with payload T.
//
// The decision tree uses it as child dispatch of fanout nodes,
// the bitset is the live alphabet and Items the children, in
// ascending byte order.
type Array256[T any] struct {
	bitset.BitSet256
	Items []T
}

// Set of the underlying bitset is forbidden. The bitset and the items are coupled.
func (a *Array256[T]) Set(byte) {
	panic("forbidden, use InsertAt")
}

// Clear of the underlying bitset is forbidden. The bitset and the items are coupled.
func (a *Array256[T]) Clear(byte) {
	panic("forbidden, use DeleteAt")
}

// Get the value at c from sparse array.
//
// example: a.Get(5) -> a.Items[1]
//
//	                        ⬇
//	BitSet256:   [0|0|1|0|0|1|0|...|1] <- 3 bits set
//	Items:       [*|*|*]               <- len(Items) = 3
//	                ⬆
//
//	BitSet256.Test(5):  true
//	BitSet256.Rank0(5): 1, popcount in [0,5] minus 1
func (a *Array256[T]) Get(c byte) (value T, ok bool) {
	if a.Test(c) {
		return a.Items[a.Rank0(c)], true
	}
	return
}

// MustGet use it only after a successful test
// or the behavior is undefined.
func (a *Array256[T]) MustGet(c byte) T {
	return a.Items[a.Rank0(c)]
}

// Len returns the number of items in sparse array.
func (a *Array256[T]) Len() int {
	return len(a.Items)
}

// InsertAt a value at c into the sparse array.
// If the value already exists, overwrite it and return true.
func (a *Array256[T]) InsertAt(c byte, value T) (exists bool) {
	if a.Test(c) {
		a.Items[a.Rank0(c)] = value
		return true
	}

	a.BitSet256.Set(c)
	rank0 := a.Rank0(c)

	// insert at rank0, shift the rest one slot right
	var zero T
	a.Items = append(a.Items, zero)
	copy(a.Items[rank0+1:], a.Items[rank0:])
	a.Items[rank0] = value

	return false
}

// DeleteAt removes the value at c from the sparse array.
func (a *Array256[T]) DeleteAt(c byte) (value T, exists bool) {
	if !a.Test(c) {
		return
	}

	rank0 := a.Rank0(c)
	value = a.Items[rank0]

	var zero T
	nl := len(a.Items) - 1
	copy(a.Items[rank0:], a.Items[rank0+1:])
	a.Items[nl] = zero // clear the tail item
	a.Items = a.Items[:nl]

	a.BitSet256.Clear(c)
	return value, true
}

// Compact reallocates Items with cap equal to len,
// called once a dispatch table is complete.
func (a *Array256[T]) Compact() {
	items := make([]T, len(a.Items))
	copy(items, a.Items)
	a.Items = items
}
