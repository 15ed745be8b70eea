// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

// Delete removes key below n and returns its former value and true, or
// false if key was not present. An empty key clears the value of n itself.
//
// Delete fails with a *[LockedTreeError] if n or a node on the way down
// is locked, the tree is unchanged then.
func (n *Node[E, V]) Delete(key []E) (val V, ok bool, err error) {
	return n.remove(key, false, "Delete")
}

// DeletePrefix removes every key below n that begins with prefix. An empty
// prefix clears n completely.
//
// DeletePrefix fails with a *[LockedTreeError] if n or a node on the way
// down is locked, the tree is unchanged then.
func (n *Node[E, V]) DeletePrefix(prefix []E) error {
	_, _, err := n.remove(prefix, true, "DeletePrefix")
	return err
}

// remove is the common part of Delete and DeletePrefix.
//
// Changes happen only at the end of the descent, all lock checks are
// done before. Afterwards every node on the path is merged bottom-up to
// restore path compression.
func (n *Node[E, V]) remove(key []E, isPrefix bool, op string) (val V, ok bool, err error) {
	if err = n.mutable(op); err != nil {
		return val, false, err
	}

	// stack of the traversed nodes, merged after the deletion
	path := []*Node[E, V]{n}

	cur := n
	for {
		// only reached with an initial empty key
		if len(key) == 0 {
			val, ok = cur.clearValue()
			if isPrefix {
				cur.clearChildren()
			}
			break
		}

		child, l := cur.match(key)
		if child == nil {
			break
		}

		if l < len(child.edge) {
			// all keys below child start with key, only if key ends inside the edge
			if isPrefix && l == len(key) {
				if err = child.mutable(op); err != nil {
					return val, false, err
				}
				cur.removeChild(child.edge[0])
			}
			break
		}

		if err = child.mutable(op); err != nil {
			return val, false, err
		}

		// exact match
		if l == len(key) {
			val, ok = child.clearValue()
			if isPrefix || len(child.children) == 0 {
				cur.removeChild(child.edge[0])
			} else {
				child.merge()
			}
			break
		}

		// go down
		path = append(path, child)
		key = key[l:]
		cur = child
	}

	for i := len(path) - 1; i >= 0; i-- {
		path[i].merge()
	}

	return val, ok, nil
}
