// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"fmt"
	"io"
	"strings"
)

// Stats describes the shape of a compiled decision tree.
type Stats struct {
	Keys      int // number of keys
	Nodes     int // all nodes
	Leaves    int // single candidate nodes
	Narrow    int // single byte nodes
	Fanout    int // byte dispatch nodes
	Accept    int // nodes consuming a nested key
	MaxFanout int // largest live alphabet of a fanout node
	MaxDepth  int // longest root to leaf path, in nodes
}

// Stats returns the node statistics of the decision tree.
func (m *matcher) Stats() Stats {
	s := Stats{Keys: len(m.keys), Nodes: len(m.nodes)}

	for i := range m.nodes {
		n := &m.nodes[i]
		switch n.kind {
		case leafNode:
			s.Leaves++
		case narrowNode:
			s.Narrow++
		case fanoutNode:
			s.Fanout++
			s.MaxFanout = max(s.MaxFanout, n.kids.Len())
		}
		if n.accept != noNode {
			s.Accept++
		}
	}

	if len(m.nodes) != 0 {
		s.MaxDepth = m.depthRec(0)
	}
	return s
}

// depthRec returns the number of nodes on the longest path from idx.
func (m *matcher) depthRec(idx int32) int {
	n := &m.nodes[idx]

	depth := 0
	switch n.kind {
	case narrowNode:
		depth = m.depthRec(n.next)
	case fanoutNode:
		for _, kid := range n.kids.Items {
			depth = max(depth, m.depthRec(kid))
		}
	}
	return depth + 1
}

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (m *matcher) dumpString() string {
	w := new(strings.Builder)
	m.dump(w)

	return w.String()
}

// dump the flat node slice to w, one node per line.
func (m *matcher) dump(w io.Writer) {
	fmt.Fprintf(w, "### size(%d), nodes(%d), maxKeyLen(%d), nested(%s)\n",
		len(m.keys), len(m.nodes), m.maxLen, m.policy)

	for i := range m.nodes {
		n := &m.nodes[i]
		fmt.Fprintf(w, "[%d] %s col:%d range:[%d:%d)", i, n.kind, n.col, n.lo, n.hi)

		if n.accept != noNode {
			fmt.Fprintf(w, " accept:%d", n.accept)
		}

		switch n.kind {
		case leafNode:
			fmt.Fprintf(w, " key:%q", m.keys[n.lo])
		case narrowNode:
			fmt.Fprintf(w, " char:%s next:%d", quoteByte(n.char), n.next)
		case fanoutNode:
			fmt.Fprintf(w, " alphabet:%s kids:%v", quoteBytes(n.kids.All()), n.kids.Items)
			if n.dense != noNode {
				fmt.Fprintf(w, " dense:%d", n.dense)
			}
		}
		fmt.Fprintln(w)
	}
}
