// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"cmp"
	"fmt"
	"strings"
)

// DumpListNode contains the formatted key, the value and the nearest
// terminal descendants of an entry, representing the tree in a sorted,
// recursive form, especially useful for serialization.
type DumpListNode[V any] struct {
	Key      string            `json:"key"`
	Value    V                 `json:"value"`
	Children []DumpListNode[V] `json:"children,omitempty"`
}

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen[E cmp.Ordered](a, b []E) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// formatKey renders a key for humans: rune, byte and string elements
// are concatenated, all other element types are printed as a list.
func formatKey[E cmp.Ordered](key []E) string {
	// you can't type switch directly on a type parameter
	switch k := any(key).(type) {
	case []rune:
		return string(k)
	case []byte:
		return string(k)
	case []string:
		return strings.Join(k, "")
	default:
		if len(key) == 0 {
			return ""
		}
		return fmt.Sprint(key)
	}
}

// keyString concatenates the elements of a textual key.
func keyString[E rune | string](key []E) string {
	switch k := any(key).(type) {
	case []rune:
		return string(k)
	case []string:
		return strings.Join(k, "")
	}
	panic("unreachable")
}
