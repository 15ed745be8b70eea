// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"cmp"
	"iter"
	"slices"
)

// walk visits all terminal nodes below and including n in depth-first
// pre-order. The keys start with the edge of n. Children are visited in
// insertion order, or ascending by their first edge element if ordered.
//
// Returns false if yield stopped the walk.
func (n *Node[E, V]) walk(ordered bool, yield func([]E, V) bool) bool {
	type frame struct {
		node  *Node[E, V]
		depth int // key length above node
	}

	stack := []frame{{n, 0}}
	var path []E

	for len(stack) != 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path = append(path[:f.depth], f.node.edge...)

		if f.node.terminal {
			if !yield(slices.Clone(path), f.node.value) {
				return false
			}
		}

		// push in reverse, the first child is popped first
		keys := f.node.childKeys(ordered)
		for i := len(keys) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.children[keys[i]], len(path)})
		}
	}

	return true
}

// All returns an iterator over all key-value pairs below and including n.
// The iteration order is stable for a given tree shape but otherwise
// unspecified. The keys start with the edge of n and may be kept by the
// caller.
func (n *Node[E, V]) All() iter.Seq2[[]E, V] {
	return func(yield func([]E, V) bool) {
		n.walk(false, yield)
	}
}

// AllSorted returns an iterator over all key-value pairs below and
// including n in lexicographic key order.
func (n *Node[E, V]) AllSorted() iter.Seq2[[]E, V] {
	return func(yield func([]E, V) bool) {
		n.walk(true, yield)
	}
}

// Each calls visit for every key-value pair below and including n,
// a node before its descendants. If ordered is true, the keys are
// visited in lexicographic order.
func (n *Node[E, V]) Each(ordered bool, visit func(key []E, val V)) {
	n.walk(ordered, func(key []E, val V) bool {
		visit(key, val)
		return true
	})
}

// EachKey is like Each, but visits only the keys.
func (n *Node[E, V]) EachKey(ordered bool, visit func(key []E)) {
	n.walk(ordered, func(key []E, _ V) bool {
		visit(key)
		return true
	})
}

// EachValue is like Each, but visits only the values.
func (n *Node[E, V]) EachValue(ordered bool, visit func(val V)) {
	n.walk(ordered, func(_ []E, val V) bool {
		visit(val)
		return true
	})
}

// Keys returns all keys below and including n.
func (n *Node[E, V]) Keys(ordered bool) [][]E {
	var keys [][]E
	n.EachKey(ordered, func(key []E) {
		keys = append(keys, key)
	})
	return keys
}

// Values returns all values below and including n, in the order of
// their keys as with [Node.Keys].
func (n *Node[E, V]) Values(ordered bool) []V {
	var vals []V
	n.EachValue(ordered, func(val V) {
		vals = append(vals, val)
	})
	return vals
}

// ToMap collects all entries below and including n into a map, the map
// keys are computed by keyFn. Slices are not comparable in Go, keyFn
// maps the key sequence to a comparable type.
func ToMap[E cmp.Ordered, V any, K comparable](n *Node[E, V], keyFn func([]E) K) map[K]V {
	m := make(map[K]V)
	n.walk(false, func(key []E, val V) bool {
		m[keyFn(key)] = val
		return true
	})
	return m
}

// StringMap is ToMap for textual keys, the elements of a key are
// concatenated to a string.
func StringMap[E rune | string, V any](n *Node[E, V]) map[string]V {
	return ToMap(n, keyString[E])
}
