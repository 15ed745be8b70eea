// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"slices"

	"github.com/gaissmai/radix/internal/value"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] = value.Equaler[V]

// Equal reports whether n and o hold the same edge and the same key-value
// pairs. Values implementing [Equaler] decide themselves, all others are
// compared with [reflect.DeepEqual]. Lock flags are ignored.
//
// Path compression makes the shape of a tree unique for its set of
// entries, so equal trees are compared node by node.
func (n *Node[E, V]) Equal(o *Node[E, V]) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.equalRec(o)
}

// equalRec compares two nodes recursively.
func (n *Node[E, V]) equalRec(o *Node[E, V]) bool {
	if n == o {
		return true
	}

	if n.terminal != o.terminal || len(n.children) != len(o.children) {
		return false
	}

	if !slices.Equal(n.edge, o.edge) {
		return false
	}

	if n.terminal && !value.Equal(n.value, o.value) {
		return false
	}

	for k, nKid := range n.children {
		oKid, ok := o.children[k]
		if !ok || !nKid.equalRec(oKid) {
			return false
		}
	}

	return true
}
