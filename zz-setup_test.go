// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"cmp"
	"testing"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// abbreviation
var rs = func(s string) []rune { return []rune(s) }

// strs converts rune keys to strings for readable diffs.
func strs(keys [][]rune) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	return out
}

// sampleTree returns scenario A: AB→1, ABBB→2, AAA→3.
func sampleTree(t *testing.T) *Node[rune, int] {
	t.Helper()
	return mustTree(t, map[string]int{"AB": 1, "ABBB": 2, "AAA": 3})
}

// wordTree returns a tree with some latin words.
func wordTree(t *testing.T) *Node[rune, int] {
	t.Helper()
	words := []string{"romane", "romanus", "romulus", "rubens", "ruber", "rubicon", "rubicundus"}

	tree := new(Node[rune, int])
	for i, w := range words {
		if err := tree.Store(rs(w), i); err != nil {
			t.Fatal(err)
		}
	}
	return tree
}

func mustTree(t *testing.T, m map[string]int) *Node[rune, int] {
	t.Helper()

	// insert in a fixed order, the map order is random
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortStrings(keys)

	tree := new(Node[rune, int])
	for _, k := range keys {
		if err := tree.Store(rs(k), m[k]); err != nil {
			t.Fatal(err)
		}
	}
	return tree
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// checkInvariants validates the structure of a tree rooted at n.
func checkInvariants[E cmp.Ordered, V any](t *testing.T, n *Node[E, V]) {
	t.Helper()

	if len(n.edge) != 0 {
		t.Errorf("root edge must be empty, got %v", n.edge)
	}
	checkNode(t, n, true)
}

func checkNode[E cmp.Ordered, V any](t *testing.T, n *Node[E, V], isRoot bool) {
	t.Helper()

	if len(n.order) != len(n.children) {
		t.Errorf("node %v: order has %d keys, children %d", n.edge, len(n.order), len(n.children))
	}

	if !isRoot {
		if len(n.edge) == 0 {
			t.Errorf("non-root node with empty edge")
		}
		if !n.terminal && len(n.children) == 1 {
			t.Errorf("node %v: useless node, no value and a single child", n.edge)
		}
		if !n.terminal && len(n.children) == 0 {
			t.Errorf("node %v: dangling node, no value and no children", n.edge)
		}
	}

	seen := make(map[E]bool, len(n.order))
	for _, k := range n.order {
		if seen[k] {
			t.Errorf("node %v: duplicate child key %v in order", n.edge, k)
		}
		seen[k] = true

		kid, ok := n.children[k]
		if !ok {
			t.Errorf("node %v: child key %v in order but not in map", n.edge, k)
			continue
		}
		if len(kid.edge) == 0 || kid.edge[0] != k {
			t.Errorf("node %v: child under %v has edge %v", n.edge, k, kid.edge)
		}
		checkNode(t, kid, false)
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s must panic", name)
		}
	}()
	fn()
}
