// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"iter"

	"github.com/google/btree"
)

// btreeDegree of the builder's B-tree.
const btreeDegree = 16

// Builder collects entries in any order and builds a [Table] or an
// [Index] from them. Inserting a key twice replaces the value.
//
// The zero value is ready to use. A Builder is not safe for
// concurrent mutation, use external synchronization.
type Builder[V any] struct {
	tree *btree.BTreeG[Entry[V]]
}

func lessEntry[V any](a, b Entry[V]) bool {
	return a.Key < b.Key
}

func (b *Builder[V]) init() {
	if b.tree == nil {
		b.tree = btree.NewG(btreeDegree, lessEntry[V])
	}
}

// Insert adds key with val, replaced reports whether the key was
// already present.
func (b *Builder[V]) Insert(key string, val V) (replaced bool) {
	b.init()
	_, replaced = b.tree.ReplaceOrInsert(Entry[V]{Key: key, Value: val})
	return
}

// Delete removes key, ok reports whether it was present.
func (b *Builder[V]) Delete(key string) (val V, ok bool) {
	b.init()
	e, ok := b.tree.Delete(Entry[V]{Key: key})
	return e.Value, ok
}

// Get returns the value of key.
func (b *Builder[V]) Get(key string) (val V, ok bool) {
	b.init()
	e, ok := b.tree.Get(Entry[V]{Key: key})
	return e.Value, ok
}

// Len returns the number of distinct keys.
func (b *Builder[V]) Len() int {
	if b.tree == nil {
		return 0
	}
	return b.tree.Len()
}

// Entries returns all entries in ascending key order.
func (b *Builder[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, b.Len())
	for e := range b.All() {
		entries = append(entries, e)
	}
	return entries
}

// Keys returns all keys in ascending order.
func (b *Builder[V]) Keys() []string {
	keys := make([]string, 0, b.Len())
	for e := range b.All() {
		keys = append(keys, e.Key)
	}
	return keys
}

// All returns an iterator over the entries in ascending key order.
func (b *Builder[V]) All() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		if b.tree == nil {
			return
		}
		b.tree.Ascend(func(e Entry[V]) bool {
			return yield(e)
		})
	}
}

// Build compiles the collected entries, see [New].
// The entries are sorted and unique, only nested keys may fail.
func (b *Builder[V]) Build(opts ...Option) (*Table[V], error) {
	return New(b.Entries(), opts...)
}

// BuildIndex compiles the collected keys to an [Index], see [NewIndex].
func (b *Builder[V]) BuildIndex(opts ...Option) (*Index, error) {
	return NewIndex(b.Keys(), opts...)
}
