// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"slices"

	"github.com/goccy/go-json"
)

// MarshalJSON dumps the subtree rooted at n as a nested JSON list,
// see [Node.DumpList]. An empty tree is encoded as [].
//
// The export is one-way, there is no UnmarshalJSON.
func (n *Node[E, V]) MarshalJSON() ([]byte, error) {
	list := n.DumpList()
	if list == nil {
		list = []DumpListNode[V]{}
	}

	return json.Marshal(list)
}

// DumpList dumps the subtree rooted at n into a list of the topmost
// entries, each with its nearest terminal descendants as children,
// in ascending key order. The keys include the edge of n.
func (n *Node[E, V]) DumpList() []DumpListNode[V] {
	if n == nil || n.IsEmpty() {
		return nil
	}

	if n.terminal {
		return []DumpListNode[V]{{
			Key:      formatKey(n.edge),
			Value:    n.value,
			Children: n.dumpListRec(n.edge),
		}}
	}

	return n.dumpListRec(n.edge)
}

// dumpListRec collects the nearest terminal descendants of n, path is
// the full key of n.
func (n *Node[E, V]) dumpListRec(path []E) []DumpListNode[V] {
	var list []DumpListNode[V]

	for _, k := range n.childKeys(true) {
		kid := n.children[k]

		// clip, the siblings must not share the appended tail
		kidPath := append(slices.Clip(path), kid.edge...)

		if kid.terminal {
			list = append(list, DumpListNode[V]{
				Key:      formatKey(kidPath),
				Value:    kid.value,
				Children: kid.dumpListRec(kidPath),
			})
			continue
		}

		// intermediate node, lift its entries one level up
		list = append(list, kid.dumpListRec(kidPath)...)
	}

	return list
}
