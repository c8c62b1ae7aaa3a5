// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a fixed size set of byte values.
//
// A BitSet256 is used as the live alphabet of a decision node: the
// set of bytes that occur at one column among the surviving keys.
// All methods are allocation free, apart from All.
package bitset

import (
	"fmt"
	"math/bits"
)

//   i>>6 is the word index and i&63 the bit index of bit i,
//   not factored out as functions to keep the methods inlineable.

// BitSet256 represents a fixed size bitset from [0..255]
type BitSet256 [4]uint64

func (b *BitSet256) String() string {
	return fmt.Sprint(b.All())
}

// Set the bit for byte c.
func (b *BitSet256) Set(c byte) {
	b[c>>6&3] |= 1 << (c & 63)
}

// Clear the bit for byte c.
func (b *BitSet256) Clear(c byte) {
	b[c>>6&3] &^= 1 << (c & 63)
}

// Test if the bit for byte c is set.
func (b *BitSet256) Test(c byte) bool {
	return b[c>>6&3]&(1<<(c&63)) != 0 // [&3] is BCE
}

// Min returns the smallest byte in the set along with an ok code.
func (b *BitSet256) Min() (c byte, ok bool) {
	if x := bits.TrailingZeros64(b[0]); x != 64 {
		return byte(x), true
	} else if x := bits.TrailingZeros64(b[1]); x != 64 {
		return byte(x + 64), true
	} else if x := bits.TrailingZeros64(b[2]); x != 64 {
		return byte(x + 128), true
	} else if x := bits.TrailingZeros64(b[3]); x != 64 {
		return byte(x + 192), true
	}
	return
}

// Max returns the largest byte in the set along with an ok code.
func (b *BitSet256) Max() (c byte, ok bool) {
	for wIdx := 3; wIdx >= 0; wIdx-- {
		if word := b[wIdx]; word != 0 {
			return byte(wIdx<<6 + bits.Len64(word) - 1), true
		}
	}
	return
}

// NextSet returns the next byte in the set starting at c,
// including c itself, along with an ok code.
func (b *BitSet256) NextSet(c byte) (byte, bool) {
	wIdx := int(c >> 6)

	// the first, maybe partial, word
	if first := b[wIdx&3] >> (c & 63); first != 0 {
		return c + byte(bits.TrailingZeros64(first)), true
	}

	for jIdx, word := range b[wIdx+1:] {
		if word != 0 {
			return byte((wIdx+1+jIdx)<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// Rank0 returns the number of set bits in [0..c], minus 1.
//
// Used as a slice index into popcount compressed payloads, the
// result is -1 for an empty prefix of the set.
func (b *BitSet256) Rank0(c byte) (rnk int) {
	wIdx := int(c >> 6)

	// full words below wIdx
	for _, word := range b[:wIdx] {
		rnk += bits.OnesCount64(word)
	}

	// partial word, up to and including bit c&63
	rnk += bits.OnesCount64(b[wIdx&3] << (63 - c&63))

	rnk--
	return
}

// Size is the number of set bits (popcount).
func (b *BitSet256) Size() (cnt int) {
	cnt += bits.OnesCount64(b[0])
	cnt += bits.OnesCount64(b[1])
	cnt += bits.OnesCount64(b[2])
	cnt += bits.OnesCount64(b[3])
	return
}

// IsEmpty returns true if no bit is set.
func (b *BitSet256) IsEmpty() bool {
	return b[3] == 0 &&
		b[2] == 0 &&
		b[1] == 0 &&
		b[0] == 0
}

// AsSlice appends all set bytes in ascending order to buf.
func (b *BitSet256) AsSlice(buf []byte) []byte {
	for wIdx, word := range b {
		for ; word != 0; word &= word - 1 {
			buf = append(buf, byte(wIdx<<6+bits.TrailingZeros64(word)))
		}
	}
	return buf
}

// All returns all set bytes in ascending order.
func (b *BitSet256) All() []byte {
	return b.AsSlice(make([]byte, 0, b.Size()))
}
