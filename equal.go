// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"github.com/gaissmai/prefixtree/internal/value"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] = value.Equaler[V]

// Equal reports whether two indexes hold the same keys under the
// same nested key policy. The dispatch mode is not compared.
func (x *Index) Equal(o *Index) bool {
	if x == nil || o == nil {
		return x == o
	}
	if x == o {
		return true
	}

	return x.equalKeys(&o.matcher)
}

// Equal reports whether two tables hold the same entries under the
// same nested key policy. Values are compared with their Equal method
// if V implements [Equaler], otherwise with [reflect.DeepEqual].
func (t *Table[V]) Equal(o *Table[V]) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t == o {
		return true
	}

	if !t.equalKeys(&o.matcher) {
		return false
	}

	for i, val := range t.values {
		if !value.Equal(val, o.values[i]) {
			return false
		}
	}
	return true
}

func (m *matcher) equalKeys(o *matcher) bool {
	if m.policy != o.policy || len(m.keys) != len(o.keys) {
		return false
	}

	for i, key := range m.keys {
		if key != o.keys[i] {
			return false
		}
	}
	return true
}
