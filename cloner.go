// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"slices"

	"github.com/gaissmai/radix/internal/value"
)

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], [Node.Clone] and [Node.Snapshot] use
// its Clone method to perform deep copies.
type Cloner[V any] = value.Cloner[V]

// Clone returns a deep copy of the subtree rooted at n. The clone is
// unlocked and shares no node with n. Values implementing [Cloner] are
// deep-copied, all others are copied by assignment.
func (n *Node[E, V]) Clone() *Node[E, V] {
	if n == nil {
		return nil
	}
	return n.cloneRec(value.CloneFnFactory[V]())
}

// Snapshot returns a locked deep copy of the subtree rooted at n. Later
// mutations of n are never visible in the snapshot.
func (n *Node[E, V]) Snapshot() *Node[E, V] {
	if n == nil {
		return nil
	}
	c := n.Clone()
	c.locked = true
	return c
}

// cloneRec, rec-descent deep copy; cloneFn may be nil.
func (n *Node[E, V]) cloneRec(cloneFn value.CloneFunc[V]) *Node[E, V] {
	c := &Node[E, V]{
		edge:     slices.Clone(n.edge),
		value:    n.value,
		terminal: n.terminal,
		order:    slices.Clone(n.order),
	}

	if n.terminal && cloneFn != nil {
		c.value = cloneFn(n.value)
	}

	if len(n.children) != 0 {
		c.children = make(map[E]*Node[E, V], len(n.children))
		for k, kid := range n.children {
			c.children[k] = kid.cloneRec(cloneFn)
		}
	}

	return c
}
