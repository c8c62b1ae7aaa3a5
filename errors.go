// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import "errors"

// Errors returned by the constructors, wrapped with the offending keys.
var (
	// ErrUnordered is returned when the keys are not in ascending byte order.
	ErrUnordered = errors.New("keys not in ascending order")

	// ErrDuplicateKey is returned when a key occurs more than once.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNestedKey is returned when a key is a strict prefix of another
	// key and the nested key policy is NestedReject.
	ErrNestedKey = errors.New("key is a prefix of another key")
)
