// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package radix provides a path-compressed prefix tree (radix tree,
// Patricia tree) over sequences of ordered elements, e.g. the runes or
// grapheme clusters of a string.
//
// The tree is an ordered key-value dictionary optimized for prefix
// queries: all entries whose key begins with a given sequence are found
// below a single node. Keys sharing long common prefixes share the nodes
// holding those prefixes.
//
// There is no separate tree type, every [Node] is the root of its own
// subtree. The zero value of Node is an empty tree, ready to use:
//
//	tree := new(radix.Node[rune, int])
//	_ = tree.Store([]rune("romane"), 1)
//	_ = tree.Store([]rune("romanus"), 2)
//	_ = tree.Store([]rune("rubens"), 3)
//
//	for key, val := range tree.FetchPrefix([]rune("rom")).AllSorted() {
//		fmt.Println(string(key), val)
//	}
//
// Views returned by [Node.FetchPrefix] and snapshots returned by
// [Node.Snapshot] are locked: every mutating method returns an error
// matching [ErrLocked]. The lock is a cooperative guard against accidental
// writes, not a synchronization primitive. A Node is not safe for
// concurrent mutation.
//
// The descent in all lookup and modify operations is iterative, the call
// depth does not grow with the key length.
package radix
