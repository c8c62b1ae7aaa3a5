// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bisect

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	simple = []string{"barz", "foo", "wombat"}
	cinfo  = []string{"abc", "def", "k", "ok"}
)

func TestAt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte('o'), At("foo", 2))
	assert.Equal(t, byte(0), At("\x00", 0))
	assert.Panics(t, func() { At("foo", 3) }, "reading past the key must panic")
	assert.Panics(t, func() { At("", 0) }, "reading an empty key must panic")
}

func TestContains(t *testing.T) {
	t.Parallel()
	n := len(cinfo)

	for _, tt := range []struct {
		lo, hi, i int
		c         byte
		want      bool
	}{
		{0, n, 0, 'a', true},
		{0, n, 0, 'd', true},
		{0, n, 0, 'k', true},
		{0, n, 0, 'o', true},
		{0, n, 1, 'b', true},
		{0, n, 1, 'e', true},
		{0, n, 1, 'k', true},
		{0, n, 2, 'c', true},
		{0, n, 2, 'f', true},
		{0, n - 1, 0, 'o', false},
		{0, n, 1, 'o', false},
		{0, n, 2, 0, false},
		{2, 2, 0, 'k', false},
	} {
		got := Contains(cinfo, tt.lo, tt.hi, tt.i, tt.c)
		assert.Equal(t, tt.want, got, "Contains(%d, %d, %d, %q)", tt.lo, tt.hi, tt.i, tt.c)
	}
}

func TestSmallestLargest(t *testing.T) {
	t.Parallel()
	n := len(cinfo)

	for _, tt := range []struct {
		lo, hi, i int
		want      byte
	}{
		{0, n, 0, 'a'},
		{0, n, 1, 'b'},
		{0, n, 2, 'c'},
		{1, n, 0, 'd'},
		{2, n, 0, 'k'},
		{3, n, 0, 'o'},
		{1, n, 1, 'e'},
		{2, n, 1, 'k'},
		{3, n, 1, 'k'},
		{1, n - 1, 0, 'd'},
		{1, n - 1, 1, 'e'},
	} {
		got, ok := Smallest(cinfo, tt.lo, tt.hi, tt.i)
		require.True(t, ok)
		assert.Equal(t, string(tt.want), string(got), "Smallest(%d, %d, %d)", tt.lo, tt.hi, tt.i)
	}

	for _, tt := range []struct {
		lo, hi, i int
		want      byte
	}{
		{0, n, 0, 'o'},
		{0, n, 1, 'k'},
		{0, n, 2, 'f'},
		{0, n - 1, 0, 'k'},
		{0, n - 2, 0, 'd'},
		{0, n - 3, 0, 'a'},
		{1, n - 1, 1, 'e'},
		{1, n - 2, 1, 'e'},
		{1, n - 1, 0, 'k'},
	} {
		got, ok := Largest(cinfo, tt.lo, tt.hi, tt.i)
		require.True(t, ok)
		assert.Equal(t, string(tt.want), string(got), "Largest(%d, %d, %d)", tt.lo, tt.hi, tt.i)
	}

	// no key is long enough
	_, ok := Smallest(cinfo, 2, 3, 1)
	assert.False(t, ok)
	_, ok = Largest(cinfo, 0, 0, 0)
	assert.False(t, ok)
}

func TestSmallestUnsigned(t *testing.T) {
	t.Parallel()

	keys := []string{"\x10", "\x7f", "\x80", "\xff"}
	c, _ := Smallest(keys, 0, len(keys), 0)
	assert.Equal(t, byte(0x10), c)
	c, _ = Largest(keys, 0, len(keys), 0)
	assert.Equal(t, byte(0xff), c)
}

func TestBounds(t *testing.T) {
	t.Parallel()
	n := len(simple)

	for _, tt := range []struct {
		i          int
		c          byte
		lower, upp int
	}{
		{0, 'z', n, n},
		{0, 0, n, n},
		{0, 'b', 0, 1},
		{0, 'f', 1, 2},
		{0, 'w', 2, 3},
		{1, 'a', 0, 1},
		{1, 'o', 1, 3},
		{2, 'r', 0, 1},
		{2, 'o', 1, 2},
		{2, 'm', 2, 3},
		{3, 'z', 0, 1},
		{3, 'b', 2, 3},
		{4, 'a', 2, 3},
		{5, 't', 2, 3},
	} {
		assert.Equal(t, tt.lower, LowerBound(simple, 0, n, tt.i, tt.c), "LowerBound(%d, %q)", tt.i, tt.c)
		assert.Equal(t, tt.upp, UpperBound(simple, 0, n, tt.i, tt.c), "UpperBound(%d, %q)", tt.i, tt.c)
	}
}

func TestBoundsWithShortFirstKey(t *testing.T) {
	t.Parallel()

	// all keys share "ab", "ab" itself has no byte at column 2
	keys := []string{"ab", "abc", "abcd", "abd", "abx"}
	n := len(keys)

	assert.Equal(t, 1, LowerBound(keys, 0, n, 2, 'c'))
	assert.Equal(t, 3, UpperBound(keys, 0, n, 2, 'c'))
	assert.Equal(t, 4, LowerBound(keys, 0, n, 2, 'x'))
	assert.Equal(t, 5, UpperBound(keys, 0, n, 2, 'x'))

	c, _ := Smallest(keys, 0, n, 2)
	assert.Equal(t, byte('c'), c)

	set := Alphabet(keys, 0, n, 2)
	assert.Equal(t, []byte("cdx"), set.All())
}

func TestAlphabetMatchesContains(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	for range 50 {
		keys := randomSortedKeys(prng, 1+prng.IntN(200))
		n := len(keys)

		// column 0 has no common prefix requirement
		set := Alphabet(keys, 0, n, 0)
		for c := range 256 {
			want := Contains(keys, 0, n, 0, byte(c))
			require.Equal(t, want, set.Test(byte(c)), "byte %#x", c)

			if want {
				lo := LowerBound(keys, 0, n, 0, byte(c))
				hi := UpperBound(keys, 0, n, 0, byte(c))
				require.Less(t, lo, hi)
				for j := range n {
					inGroup := len(keys[j]) > 0 && keys[j][0] == byte(c)
					require.Equal(t, inGroup, j >= lo && j < hi, "key %d byte %#x", j, c)
				}
			}
		}
	}
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, MaxLen(simple, 0, 1))
	assert.Equal(t, 4, MaxLen(simple, 0, 2))
	assert.Equal(t, 6, MaxLen(simple, 0, 3))
	assert.Equal(t, 3, MaxLen(simple, 1, 2))
	assert.Equal(t, 6, MaxLen(simple, 1, 3))
	assert.Equal(t, 6, MaxLen(simple, 2, 3))
	assert.Equal(t, 0, MaxLen(simple, 1, 1))
	assert.Equal(t, 0, MaxLen([]string{""}, 0, 1))
}

func randomSortedKeys(prng *rand.Rand, n int) []string {
	seen := map[string]bool{}
	for range n {
		b := make([]byte, prng.IntN(8))
		for j := range b {
			b[j] = byte(prng.IntN(256))
		}
		seen[string(b)] = true
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
