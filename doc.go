// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package prefixtree provides static exact-prefix matchers for a fixed
// set of byte string keys, known when the matcher is built.
//
// A lookup determines which key is a byte-wise prefix of an arbitrary
// input and returns that key's position in the table, or the sentinel
// Size() if no key matches. There are two variants:
//
//   - Index: keys only, the position indexes external parallel data
//   - Table: keys with values of type V, lookups return a Cursor
//
// Construction validates the table (keys strictly ascending) and compiles
// it once into a flat decision tree. Each node tests one input byte
// against the bytes occurring at that column among the surviving keys:
//
//   - leaf:   a single candidate, the remaining key bytes are compared
//   - narrow: all candidates share the next byte, one byte test
//   - fanout: a byte indexed dispatch over the live alphabet, popcount
//     compressed by default or 256 wide with [WithDenseDispatch]
//
// The compiled matcher is immutable, lookups are allocation free and
// safe for concurrent use. The cost of a lookup is bounded by the
// length of the longest key.
//
// Keys that are a strict prefix of another key are rejected by default,
// see [WithNestedKeys] for the longest and shortest match policies.
//
// Tables are best declared as package level variables with [MustNew]
// or [MustNewIndex], an invalid table then fails at program start. The
// prefixgen command generates such declarations from key lists.
package prefixtree
