// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides helpers for the generic payload V of a table.
//
// Values are never inspected by matching, the helpers serve table
// comparison and diagnostic output only.
package value

import (
	"fmt"
	"reflect"
)

// IsZST reports whether type V is a zero-sized type (ZST).
//
// The Go runtime returns the same address for all allocations of
// zero-sized types, two distinct heap allocations of V are compared.
func IsZST[V any]() bool {
	a, b := escapeToHeap[V]()
	return a == b
}

// escapeToHeap forces two allocations of type V to escape to the heap.
//
//go:noinline
func escapeToHeap[V any]() (*V, *V) {
	return new(V), new(V)
}

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used,
// otherwise reflect.DeepEqual.
func Equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	return reflect.DeepEqual(v1, v2)
}

// Sprint formats val for diagnostic output, zero-sized
// payloads carry no information and are printed as "".
func Sprint[V any](val V) string {
	if IsZST[V]() {
		return ""
	}
	return fmt.Sprint(val)
}
