// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"fmt"
	"iter"
)

// Entry is a key with its value.
type Entry[V any] struct {
	Key   string
	Value V
}

// Table is a compiled prefix matcher over keys with values of type V.
// Lookups return a [Cursor], dereferenceable to the value of the
// matching entry and equal to End() if no key matches.
//
// A Table is immutable and safe for concurrent use. The values are
// copied by assignment, pointer payloads are shared with the caller.
type Table[V any] struct {
	matcher
	values []V
}

// New validates and compiles entries. The keys must be strictly
// ascending in bytewise order, see [Compare]. The entries are copied.
func New[V any](entries []Entry[V], opts ...Option) (*Table[V], error) {
	keys := make([]string, len(entries))
	values := make([]V, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		values[i] = e.Value
	}

	m, err := newMatcher(keys, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &Table[V]{matcher: m, values: values}, nil
}

// MustNew is like [New] but panics on an invalid table.
// It simplifies the initialization of package level variables.
func MustNew[V any](entries []Entry[V], opts ...Option) *Table[V] {
	t, err := New(entries, opts...)
	if err != nil {
		panic("prefixtree: New: " + err.Error())
	}
	return t
}

// Lookup returns a cursor at the entry whose key is a prefix of input,
// or End().
func (t *Table[V]) Lookup(input string) Cursor[V] {
	return Cursor[V]{t: t, i: lookup(&t.matcher, input)}
}

// LookupBytes is like [Table.Lookup] for byte slices.
func (t *Table[V]) LookupBytes(input []byte) Cursor[V] {
	return Cursor[V]{t: t, i: lookup(&t.matcher, input)}
}

// LookupIndex returns the index of the entry whose key is a prefix
// of input, or the fail sentinel Size().
func (t *Table[V]) LookupIndex(input string) int {
	return lookup(&t.matcher, input)
}

// LookupValue returns the value of the entry whose key is a prefix of
// input and true, or the zero value and false.
func (t *Table[V]) LookupValue(input string) (val V, ok bool) {
	if i := lookup(&t.matcher, input); i < len(t.values) {
		return t.values[i], true
	}
	return
}

// Value returns the value at index i.
// It panics if i is out of range.
func (t *Table[V]) Value(i int) V {
	if i < 0 || i >= len(t.values) {
		panic(fmt.Sprintf("index %d out of range [0:%d)", i, len(t.values)))
	}
	return t.values[i]
}

// Begin returns a cursor at the first entry, equal to End() for an empty table.
func (t *Table[V]) Begin() Cursor[V] {
	return Cursor[V]{t: t, i: 0}
}

// End returns the cursor past the last entry, the result of failed lookups.
func (t *Table[V]) End() Cursor[V] {
	return Cursor[V]{t: t, i: len(t.values)}
}

// All returns an iterator over all keys and values in ascending key order.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i, key := range t.keys {
			if !yield(key, t.values[i]) {
				return
			}
		}
	}
}

// Cursor is a position in a [Table]. Cursors are comparable,
// a failed lookup returns a cursor equal to End():
//
//	if c := tbl.Lookup(input); c != tbl.End() {
//		use(c.Value())
//	}
type Cursor[V any] struct {
	t *Table[V]
	i int
}

// Valid reports whether the cursor is at an entry, not at End().
func (c Cursor[V]) Valid() bool {
	return c.t != nil && c.i < len(c.t.values)
}

// Index returns the position of the cursor, Size() at End().
func (c Cursor[V]) Index() int {
	return c.i
}

// Key returns the key of the entry at the cursor.
// It panics at End().
func (c Cursor[V]) Key() string {
	c.mustBeValid()
	return c.t.keys[c.i]
}

// Value returns the value of the entry at the cursor.
// It panics at End().
func (c Cursor[V]) Value() V {
	c.mustBeValid()
	return c.t.values[c.i]
}

// Next returns the cursor at the following entry, End() stays End().
func (c Cursor[V]) Next() Cursor[V] {
	if c.Valid() {
		c.i++
	}
	return c
}

func (c Cursor[V]) mustBeValid() {
	if !c.Valid() {
		panic("prefixtree: dereference of end cursor")
	}
}
