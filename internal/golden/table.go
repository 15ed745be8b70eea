// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow key-value table as a golden
// reference for the radix tree.
package golden

import (
	"cmp"
	"fmt"
	"slices"
)

// Table is a simple and slow dictionary, implemented as an unsorted slice
// of keys and values.
type Table[E cmp.Ordered, V any] []Item[E, V]

// Item is a single entry of the golden table.
type Item[E cmp.Ordered, V any] struct {
	Key []E
	Val V
}

func (g Item[E, V]) String() string {
	return fmt.Sprintf("(%v, %v)", g.Key, g.Val)
}

// Store inserts or overwrites key.
func (t *Table[E, V]) Store(key []E, val V) {
	for i, item := range *t {
		if slices.Equal(item.Key, key) {
			(*t)[i].Val = val // de-dupe
			return
		}
	}
	*t = append(*t, Item[E, V]{slices.Clone(key), val})
}

// Delete removes key and returns its value.
func (t *Table[E, V]) Delete(key []E) (val V, exists bool) {
	for i, item := range *t {
		if slices.Equal(item.Key, key) {
			*t = slices.Delete(*t, i, i+1)
			return item.Val, true
		}
	}
	return val, false
}

// DeletePrefix removes all keys starting with prefix.
func (t *Table[E, V]) DeletePrefix(prefix []E) {
	*t = slices.DeleteFunc(*t, func(item Item[E, V]) bool {
		return HasPrefix(item.Key, prefix)
	})
}

// Get returns the value for key.
func (t Table[E, V]) Get(key []E) (val V, ok bool) {
	for _, item := range t {
		if slices.Equal(item.Key, key) {
			return item.Val, true
		}
	}
	return val, false
}

// AllSorted returns all keys in lexicographic order.
func (t Table[E, V]) AllSorted() [][]E {
	result := make([][]E, 0, len(t))
	for _, item := range t {
		result = append(result, item.Key)
	}
	slices.SortFunc(result, slices.Compare)
	return result
}

// WithPrefix returns all keys starting with prefix, sorted.
func (t Table[E, V]) WithPrefix(prefix []E) [][]E {
	var result [][]E
	for _, item := range t {
		if HasPrefix(item.Key, prefix) {
			result = append(result, item.Key)
		}
	}
	slices.SortFunc(result, slices.Compare)
	return result
}

// LongestPrefix returns the longest stored key being a prefix of key.
func (t Table[E, V]) LongestPrefix(key []E) (lpm []E, val V, ok bool) {
	bestLen := -1

	for _, item := range t {
		if HasPrefix(key, item.Key) && len(item.Key) > bestLen {
			lpm = item.Key
			val = item.Val
			ok = true
			bestLen = len(item.Key)
		}
	}
	return lpm, val, ok
}

// Sort, inplace by key.
func (t *Table[E, V]) Sort() {
	slices.SortFunc(*t, func(a, b Item[E, V]) int {
		return slices.Compare(a.Key, b.Key)
	})
}

// HasPrefix reports whether key begins with prefix.
func HasPrefix[E cmp.Ordered](key, prefix []E) bool {
	return len(key) >= len(prefix) && slices.Equal(key[:len(prefix)], prefix)
}
