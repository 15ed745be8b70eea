// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"cmp"
	"maps"
	"slices"
)

// Node is a node of a path-compressed prefix tree with keys of type []E
// and payload V.
//
// A Node is at the same time the root of its subtree and, if it has a
// parent, the child stored under the first element of its edge. The full
// key of a node is the concatenation of all edges from the root down to
// and including the node itself; it is never stored.
//
// The zero value is an empty, unlocked root.
type Node[E cmp.Ordered, V any] struct {
	// label of the link from the parent, empty for a root
	edge []E

	// payload, only valid if terminal is set
	value    V
	terminal bool

	// children by the first element of their edge,
	// no two children share element 0
	children map[E]*Node[E, V]

	// keys of children in insertion order, for a stable unordered walk
	order []E

	// mutating methods fail on a locked node
	locked bool
}

// New returns an empty root node.
func New[E cmp.Ordered, V any]() *Node[E, V] {
	return new(Node[E, V])
}

// match finds the child whose edge starts with key[0] and returns it with
// the length of the common prefix of key and the child edge.
// key must not be empty.
func (n *Node[E, V]) match(key []E) (*Node[E, V], int) {
	child := n.children[key[0]]
	if child == nil {
		return nil, 0
	}
	return child, commonPrefixLen(key, child.edge)
}

// addChild inserts or replaces c under the first element of its edge.
func (n *Node[E, V]) addChild(c *Node[E, V]) {
	if n.children == nil {
		n.children = make(map[E]*Node[E, V], 2)
	}

	k := c.edge[0]
	if _, exists := n.children[k]; !exists {
		n.order = append(n.order, k)
	}
	n.children[k] = c
}

// removeChild unlinks the child stored under k, if any.
func (n *Node[E, V]) removeChild(k E) {
	if _, exists := n.children[k]; !exists {
		return
	}

	delete(n.children, k)
	if idx := slices.Index(n.order, k); idx >= 0 {
		n.order = slices.Delete(n.order, idx, idx+1)
	}

	if len(n.children) == 0 {
		n.children, n.order = nil, nil
	}
}

// clearChildren drops the whole subtree below n.
func (n *Node[E, V]) clearChildren() {
	n.children, n.order = nil, nil
}

// onlyChild returns the single child of n, or nil.
func (n *Node[E, V]) onlyChild() *Node[E, V] {
	if len(n.children) != 1 {
		return nil
	}
	return n.children[n.order[0]]
}

// childKeys returns the child keys in insertion order or, if ordered,
// in ascending order. The result must not be modified.
func (n *Node[E, V]) childKeys(ordered bool) []E {
	if !ordered || len(n.order) < 2 {
		return n.order
	}

	keys := slices.Clone(n.order)
	slices.Sort(keys)
	return keys
}

// setValue makes n terminal with val.
func (n *Node[E, V]) setValue(val V) {
	n.value, n.terminal = val, true
}

// clearValue makes n an interior node and returns the previous value.
func (n *Node[E, V]) clearValue() (val V, ok bool) {
	val, ok = n.value, n.terminal

	var zero V
	n.value, n.terminal = zero, false

	return val, ok
}

// split cuts the edge of n after l elements, 0 < l < len(n.edge).
// The tail of the edge, the value and the children move into a new
// intermediate child, n keeps its identity and becomes a non-terminal
// node with this single child.
func (n *Node[E, V]) split(l int) {
	tail := &Node[E, V]{
		edge:     n.edge[l:],
		value:    n.value,
		terminal: n.terminal,
		children: n.children,
		order:    n.order,
	}

	// cap the head, an append must never overwrite the tail
	n.edge = n.edge[:l:l]
	n.clearValue()
	n.clearChildren()
	n.addChild(tail)
}

// merge restores path compression on n: a non-root node without a value
// and with exactly one child absorbs this child. Idempotent.
func (n *Node[E, V]) merge() {
	if len(n.edge) == 0 || n.terminal {
		return
	}

	child := n.onlyChild()
	if child == nil {
		return
	}

	// always reallocate, the edges may share a backing array
	n.edge = append(n.edge[:len(n.edge):len(n.edge)], child.edge...)
	n.value, n.terminal = child.value, child.terminal
	n.children, n.order = child.children, child.order
}

// mutable returns a *LockedTreeError if n is locked.
func (n *Node[E, V]) mutable(op string) error {
	if n.locked {
		return &LockedTreeError{Op: op, Edge: formatKey(n.edge)}
	}
	return nil
}

// IsTerminal reports whether n holds a value.
func (n *Node[E, V]) IsTerminal() bool {
	return n.terminal
}

// IsLeaf reports whether n has no children.
func (n *Node[E, V]) IsLeaf() bool {
	return len(n.children) == 0
}

// IsEmpty reports whether n holds neither a value nor children.
func (n *Node[E, V]) IsEmpty() bool {
	return !n.terminal && len(n.children) == 0
}

// IsLocked reports whether mutating methods on n are rejected.
func (n *Node[E, V]) IsLocked() bool {
	return n.locked
}

// Edge returns a copy of the edge label of n. The edge of a root is empty.
func (n *Node[E, V]) Edge() []E {
	return slices.Clone(n.edge)
}

// Value returns the value of n and whether n is terminal.
func (n *Node[E, V]) Value() (val V, ok bool) {
	return n.value, n.terminal
}

// Copy returns a structural copy of n: edge and children container are
// copied, the children themselves are shared with n. The copy is always
// unlocked, even if n is locked.
//
// Mutations of the copy below its first level are visible in n and vice
// versa, use [Node.Clone] for an independent tree.
func (n *Node[E, V]) Copy() *Node[E, V] {
	c := &Node[E, V]{
		edge:     slices.Clone(n.edge),
		value:    n.value,
		terminal: n.terminal,
		order:    slices.Clone(n.order),
	}
	if n.children != nil {
		c.children = maps.Clone(n.children)
	}
	return c
}

// view returns a locked structural copy of n relabeled with edge.
func (n *Node[E, V]) view(edge []E) *Node[E, V] {
	v := n.Copy()
	v.edge = edge
	v.locked = true
	return v
}

// emptyView returns a fresh empty locked node.
func emptyView[E cmp.Ordered, V any]() *Node[E, V] {
	return &Node[E, V]{locked: true}
}
