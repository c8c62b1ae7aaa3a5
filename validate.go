// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"fmt"
	"strings"

	"github.com/gaissmai/prefixtree/internal/bisect"
)

// Validate checks keys as the constructors do: strictly ascending
// and, unless allowed by [WithNestedKeys], no key a prefix of another.
func Validate(keys []string, opts ...Option) error {
	return validate(keys, newConfig(opts).nested)
}

func validate(keys []string, policy NestedPolicy) error {
	if !ordered(keys, 0, len(keys)) {
		return disorder(keys)
	}

	if policy == NestedReject {
		// sorted: a key prefixing any later key prefixes its successor
		for i := 1; i < len(keys); i++ {
			if strings.HasPrefix(keys[i], keys[i-1]) {
				return fmt.Errorf("%w: %q at index %d is a prefix of %q at index %d",
					ErrNestedKey, keys[i-1], i-1, keys[i], i)
			}
		}
	}

	return nil
}

// ordered reports whether keys[lo:hi] is strictly ascending.
// The range is bisected recursively, only the pair at each
// split point is compared.
func ordered(keys []string, lo, hi int) bool {
	if hi-lo < 2 {
		return true
	}

	m := lo + (hi-lo)/2
	return ordered(keys, lo, m) &&
		Less(keys[m-1], keys[m]) &&
		ordered(keys, m, hi)
}

// disorder returns the error for the first pair out of order,
// only called after ordered failed.
func disorder(keys []string) error {
	for i := 1; i < len(keys); i++ {
		switch Compare(keys[i-1], keys[i]) {
		case 0:
			return fmt.Errorf("%w: %q at index %d and %d", ErrDuplicateKey, keys[i], i-1, i)
		case 1:
			return fmt.Errorf("%w: %q at index %d sorts after %q at index %d",
				ErrUnordered, keys[i-1], i-1, keys[i], i)
		}
	}
	panic("logic error, ordered and disorder disagree")
}

// maxKeyLen is the length of the longest key, the bound of the
// input columns ever inspected.
func maxKeyLen(keys []string) int {
	return bisect.MaxLen(keys, 0, len(keys))
}
