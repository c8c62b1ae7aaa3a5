// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"github.com/gaissmai/prefixtree/internal/sparse"
)

type nodeKind uint8

const (
	leafNode   nodeKind = iota // single candidate, compare the remaining key bytes
	narrowNode                 // all candidates share the byte at col
	fanoutNode                 // byte dispatch over the live alphabet at col
)

func (k nodeKind) String() string {
	switch k {
	case leafNode:
		return "leaf"
	case narrowNode:
		return "narrow"
	case fanoutNode:
		return "fanout"
	default:
		return "unknown"
	}
}

// noNode marks a missing child or accept index.
const noNode = -1

// node is one step of the compiled decision tree.
//
// The active range [lo, hi) and col are recorded for diagnostics,
// execution needs lo only for leaves.
type node struct {
	kind nodeKind

	// narrowNode: the only byte at col
	char byte

	col    int32
	lo, hi int32

	// index of the key fully consumed at col, nested keys only
	accept int32

	// narrowNode: the child
	next int32

	// fanoutNode: children by byte, always built
	kids sparse.Array256[int32]

	// fanoutNode: index into matcher.dense, or noNode
	dense int32
}
