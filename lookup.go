// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"slices"
)

// Get returns the value stored for key below n and true, or false if key
// is not present. An empty key returns the value of n itself.
func (n *Node[E, V]) Get(key []E) (val V, ok bool) {
	cur := n
	for len(key) != 0 {
		child, l := cur.match(key)
		if child == nil || l < len(child.edge) {
			return val, false
		}

		key = key[l:]
		cur = child
	}
	return cur.value, cur.terminal
}

// Fetch returns the value stored for key below n, or def if key is not
// present.
func (n *Node[E, V]) Fetch(key []E, def V) V {
	if val, ok := n.Get(key); ok {
		return val
	}
	return def
}

// Contains reports whether key is present below n.
func (n *Node[E, V]) Contains(key []E) bool {
	_, ok := n.Get(key)
	return ok
}

// FetchPrefix returns a locked view of all entries below n whose key
// begins with prefix. If nothing matches, the view is a fresh empty
// locked node.
//
// The view is relabeled with the full key of its topmost node, relative
// to n and including the edge of n, so every key of the view begins
// with prefix. It shares all nodes below its first level with n: later
// mutations of n may show through, use [Node.Snapshot] on the view for
// an independent copy.
func (n *Node[E, V]) FetchPrefix(prefix []E) *Node[E, V] {
	// accumulated edges from n down to cur
	acc := slices.Clone(n.edge)

	cur := n
	for len(prefix) != 0 {
		child, l := cur.match(prefix)
		if child == nil {
			return emptyView[E, V]()
		}

		// Partial match, the prefix diverges inside the child edge.
		// If instead the prefix ends inside the edge, every key below child
		// extends the matched part, see below. Both cases rely on
		// edge-disjointness: no sibling can hold any other key with this prefix.
		if l < len(child.edge) && l < len(prefix) {
			return emptyView[E, V]()
		}

		acc = append(acc, child.edge...)

		// exact match or prefix ends inside the child edge
		if l == len(prefix) {
			return child.view(acc)
		}

		// full edge match, go down
		prefix = prefix[l:]
		cur = child
	}

	return cur.view(acc)
}

// LongestPrefix returns the longest key stored below n which is a prefix
// of key, together with its value. The returned prefix is relative to n.
// If no stored key is a prefix of key, ok is false.
func (n *Node[E, V]) LongestPrefix(key []E) (prefix []E, val V, ok bool) {
	best := 0
	depth := 0
	rest := key

	cur := n
	for {
		if cur.terminal {
			best, val, ok = depth, cur.value, true
		}

		if len(rest) == 0 {
			break
		}

		child, l := cur.match(rest)
		if child == nil || l < len(child.edge) {
			break
		}

		depth += l
		rest = rest[l:]
		cur = child
	}

	if !ok {
		return nil, val, false
	}
	return slices.Clone(key[:best]), val, true
}
