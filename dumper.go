// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"fmt"
	"io"
	"strings"
)

type nodeType byte

const (
	nullNode         nodeType = iota // no value, no children
	fullNode                         // value and children
	leafNode                         // value, no children
	intermediateNode                 // only children, no value
)

func (nt nodeType) String() string {
	switch nt {
	case nullNode:
		return "NULL"
	case fullNode:
		return "FULL"
	case leafNode:
		return "LEAF"
	case intermediateNode:
		return "IMED"
	default:
		return "unreachable"
	}
}

// hasType classifies n.
func (n *Node[E, V]) hasType() nodeType {
	switch {
	case !n.terminal && len(n.children) == 0:
		return nullNode
	case len(n.children) == 0:
		return leafNode
	case n.terminal:
		return fullNode
	default:
		return intermediateNode
	}
}

// Stats describes the shape of a subtree.
type Stats struct {
	Entries   int // number of stored keys
	Nodes     int // number of nodes, including the subtree root
	MaxDepth  int // number of edges on the longest path from the subtree root
	MaxKeyLen int // length of the longest key, including the edge of the subtree root
	MaxFanout int // largest number of children of a single node
}

// Stats returns the shape statistics of the subtree rooted at n.
func (n *Node[E, V]) Stats() Stats {
	var s Stats
	n.statsRec(&s, 0, 0)
	return s
}

// statsRec, rec-descent the subtree and update s.
func (n *Node[E, V]) statsRec(s *Stats, depth, keyLen int) {
	keyLen += len(n.edge)

	s.Nodes++
	s.MaxDepth = max(s.MaxDepth, depth)
	s.MaxFanout = max(s.MaxFanout, len(n.children))

	if n.terminal {
		s.Entries++
		s.MaxKeyLen = max(s.MaxKeyLen, keyLen)
	}

	for _, k := range n.order {
		n.children[k].statsRec(s, depth+1, keyLen)
	}
}

// Len returns the number of keys stored below and including n.
func (n *Node[E, V]) Len() int {
	count := 0
	n.walk(false, func([]E, V) bool {
		count++
		return true
	})
	return count
}

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (n *Node[E, V]) dumpString() string {
	w := new(strings.Builder)
	n.dump(w)

	return w.String()
}

// dump the subtree structure and all the nodes to w.
func (n *Node[E, V]) dump(w io.Writer) {
	if n == nil {
		return
	}

	s := n.Stats()
	fmt.Fprintf(w, "### entries(%d), nodes(%d), locked(%v)", s.Entries, s.Nodes, n.locked)
	n.dumpRec(w, 0)
	fmt.Fprintln(w)
}

// dumpRec, rec-descent the tree in ascending child order.
func (n *Node[E, V]) dumpRec(w io.Writer, depth int) {
	indent := strings.Repeat(".", depth)

	fmt.Fprintf(w, "\n%s[%s] depth: %d edge: %q", indent, n.hasType(), depth, formatKey(n.edge))

	if n.terminal {
		fmt.Fprintf(w, " value: %v", n.value)
	}

	if len(n.children) != 0 {
		keys := n.childKeys(true)
		fmt.Fprintf(w, "\n%schilds(#%d):", indent, len(keys))
		for _, k := range keys {
			fmt.Fprintf(w, " %q", formatKey([]E{k}))
		}
	}

	for _, k := range n.childKeys(true) {
		n.children[k].dumpRec(w, depth+1)
	}
}
