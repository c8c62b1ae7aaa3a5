// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

// Index is a compiled prefix matcher over keys only. The index
// returned by a lookup addresses external data kept parallel to
// the keys.
//
// An Index is immutable and safe for concurrent use.
type Index struct {
	matcher
}

// NewIndex validates and compiles keys. The keys must be strictly
// ascending in bytewise order, see [Compare]. The slice is copied.
func NewIndex(keys []string, opts ...Option) (*Index, error) {
	m, err := newMatcher(keys, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &Index{matcher: m}, nil
}

// MustNewIndex is like [NewIndex] but panics on an invalid table.
// It simplifies the initialization of package level variables.
func MustNewIndex(keys []string, opts ...Option) *Index {
	x, err := NewIndex(keys, opts...)
	if err != nil {
		panic("prefixtree: NewIndex: " + err.Error())
	}
	return x
}

// Lookup returns the index of the key that is a prefix of input,
// or the fail sentinel Size().
func (x *Index) Lookup(input string) int {
	return lookup(&x.matcher, input)
}

// LookupBytes is like [Index.Lookup] for byte slices.
func (x *Index) LookupBytes(input []byte) int {
	return lookup(&x.matcher, input)
}

// LookupIndex is identical to [Index.Lookup] for an Index.
func (x *Index) LookupIndex(input string) int {
	return lookup(&x.matcher, input)
}
