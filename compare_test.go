// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y string
		want int
	}{
		{"", "", 0},
		{"", "a", -1},
		{"a", "", 1},
		{"\x00", "", 1},
		{"abc", "abc", 0},
		{"ab", "abc", -1},
		{"abd", "abc", 1},
		{"\x7f", "\x80", -1},
		{"\xff", "\x01", 1},
		{"foo", "bar", 1},
	}

	for _, tt := range tests {
		if got := Compare(tt.x, tt.y); got != tt.want {
			t.Errorf("Compare(%q, %q), expected %d, got %d", tt.x, tt.y, tt.want, got)
		}
		if got := Compare([]byte(tt.x), tt.y); got != tt.want {
			t.Errorf("Compare([]byte(%q), %q), expected %d, got %d", tt.x, tt.y, tt.want, got)
		}
		if got := Less(tt.x, tt.y); got != (tt.want < 0) {
			t.Errorf("Less(%q, %q), expected %v, got %v", tt.x, tt.y, tt.want < 0, got)
		}
	}
}

func TestCompareAgreesWithStrings(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	for range 10_000 {
		x := randomBytes(prng, 4)
		y := randomBytes(prng, 4)
		if got, want := Compare(x, y), strings.Compare(x, y); got != want {
			t.Fatalf("Compare(%q, %q), expected %d, got %d", x, y, want, got)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, key string
		want       bool
	}{
		{"", "", true},
		{"foo", "", true},
		{"foo", "foo", true},
		{"foobar", "foo", true},
		{"fo", "foo", false},
		{"fox", "foo", false},
		{"\x80\x00", "\x80", true},
	}

	for _, tt := range tests {
		if got := HasPrefix(tt.input, tt.key); got != tt.want {
			t.Errorf("HasPrefix(%q, %q), expected %v, got %v", tt.input, tt.key, tt.want, got)
		}
		if got := HasPrefix([]byte(tt.input), tt.key); got != tt.want {
			t.Errorf("HasPrefix([]byte(%q), %q), expected %v, got %v", tt.input, tt.key, tt.want, got)
		}
	}
}

func randomBytes(prng *rand.Rand, maxLen int) string {
	b := make([]byte, prng.IntN(maxLen+1))
	for i := range b {
		b[i] = byte(prng.IntN(256))
	}
	return string(b)
}
