// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"slices"
)

// Store inserts key with val below n. If key is already present, its
// value is overwritten. An empty key sets the value of n itself.
//
// Store fails with a *[LockedTreeError] if n or a node on the way down
// is locked, the tree is unchanged then. Store keeps no reference to key.
func (n *Node[E, V]) Store(key []E, val V) error {
	if err := n.mutable("Store"); err != nil {
		return err
	}

	cur := n
	for len(key) != 0 {
		child, l := cur.match(key)

		// no child shares the first element, new leaf
		if child == nil {
			cur.addChild(&Node[E, V]{edge: slices.Clone(key), value: val, terminal: true})
			return nil
		}

		if err := child.mutable("Store"); err != nil {
			return err
		}

		// partial match, split the child edge after l elements
		if l < len(child.edge) {
			child.split(l)

			// key ends inside the old edge, the split node is the target
			if l == len(key) {
				child.setValue(val)
				return nil
			}

			child.addChild(&Node[E, V]{edge: slices.Clone(key[l:]), value: val, terminal: true})
			return nil
		}

		// full edge match, go down
		key = key[l:]
		cur = child
	}

	cur.setValue(val)
	return nil
}

// Assign is Store with an explicit optional value: if ok is false the key
// is deleted instead, as with [Node.Delete].
func (n *Node[E, V]) Assign(key []E, val V, ok bool) error {
	if !ok {
		_, _, err := n.Delete(key)
		return err
	}
	return n.Store(key, val)
}
