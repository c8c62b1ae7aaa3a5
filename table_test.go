// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gaissmai/prefixtree/internal/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleEntries = []Entry[int]{{"barz", 4}, {"foo", 7}, {"wombat", 12}}

func TestTableCursor(t *testing.T) {
	t.Parallel()
	tbl := MustNew(exampleEntries)

	assert.Equal(t, tbl.Begin(), tbl.Lookup("barz"))
	assert.Equal(t, tbl.End(), tbl.Lookup("badger"))
	assert.Equal(t, tbl.End(), tbl.Lookup("fo"))
	assert.Equal(t, tbl.End(), tbl.Lookup("wom"))

	assert.Equal(t, 4, tbl.Lookup("barz").Value())
	assert.Equal(t, 7, tbl.Lookup("foo").Value())
	assert.Equal(t, 7, tbl.Lookup("foob").Value())
	assert.Equal(t, 7, tbl.LookupBytes([]byte("foobar")).Value())
	assert.Equal(t, 12, tbl.Lookup("wombat").Value())

	c := tbl.Lookup("foobar")
	require.True(t, c.Valid())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, "foo", c.Key())
	assert.Equal(t, 7, tbl.Value(tbl.LookupIndex("foobar")))

	end := tbl.End()
	assert.False(t, end.Valid())
	assert.Equal(t, tbl.Size(), end.Index())
	assert.Panics(t, func() { end.Value() })
	assert.Panics(t, func() { end.Key() })
	assert.Equal(t, end, end.Next())

	var zero Cursor[int]
	assert.False(t, zero.Valid())
	assert.Panics(t, func() { zero.Value() })
}

func TestTableCursorWalk(t *testing.T) {
	t.Parallel()
	tbl := MustNew(exampleEntries)

	var got []Entry[int]
	for c := tbl.Begin(); c != tbl.End(); c = c.Next() {
		got = append(got, Entry[int]{c.Key(), c.Value()})
	}
	assert.Equal(t, exampleEntries, got)
}

func TestTableLookupValue(t *testing.T) {
	t.Parallel()
	tbl := MustNew(exampleEntries)

	val, ok := tbl.LookupValue("wombats")
	assert.True(t, ok)
	assert.Equal(t, 12, val)

	val, ok = tbl.LookupValue("zebra")
	assert.False(t, ok)
	assert.Zero(t, val)

	assert.Panics(t, func() { tbl.Value(3) })
}

func TestTableAll(t *testing.T) {
	t.Parallel()
	tbl := MustNew(exampleEntries)

	got := maps.Collect(tbl.All())
	assert.Equal(t, map[string]int{"barz": 4, "foo": 7, "wombat": 12}, got)

	var keys []string
	for key := range tbl.All() {
		keys = append(keys, key)
		if len(keys) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"barz", "foo"}, keys)
}

func TestTableRoundTrip(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	for range 50 {
		gold := golden.Random(prng, 1+prng.IntN(500), 1, 8, false)

		entries := make([]Entry[int], 0, len(gold))
		for _, item := range gold {
			entries = append(entries, Entry[int]{item.Key, item.Val})
		}
		tbl := MustNew(entries)

		for _, item := range gold {
			require.Equal(t, item.Val, tbl.Lookup(item.Key).Value(), "Lookup(%q)", item.Key)
			require.Equal(t, item.Val, tbl.Lookup(item.Key+"\x00suffix").Value(), "Lookup(%q+suffix)", item.Key)
		}
	}
}

func TestTableEntriesAreCopied(t *testing.T) {
	t.Parallel()

	entries := slices.Clone(exampleEntries)
	tbl := MustNew(entries)
	entries[1].Value = 99

	assert.Equal(t, 7, tbl.Lookup("foo").Value())
}

func TestTableUnordered(t *testing.T) {
	t.Parallel()

	entries := []Entry[int]{{"foo", 0}, {"bar", 1}, {"abc", 2}}
	_, err := New(entries)
	require.ErrorIs(t, err, ErrUnordered)

	slices.SortFunc(entries, func(a, b Entry[int]) int { return Compare(a.Key, b.Key) })
	tbl, err := New(entries)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Lookup("foo").Value())
	assert.Equal(t, 2, tbl.Lookup("abcd").Value())

	assert.PanicsWithValue(t,
		`prefixtree: New: duplicate key: "abc" at index 0 and 1`,
		func() { MustNew([]Entry[int]{{"abc", 0}, {"abc", 1}}) })
}
