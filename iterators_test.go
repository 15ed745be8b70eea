// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"iter"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gaissmai/radix/internal/tests/random"
	"github.com/gaissmai/radix/textkey"
)

func TestAllInsertionOrder(t *testing.T) {
	t.Parallel()
	tree := new(Node[rune, int])

	for i, k := range []string{"b", "a", "c", "ba", "bb", "aa"} {
		_ = tree.Store(rs(k), i)
	}

	var got []string
	for key := range tree.All() {
		got = append(got, string(key))
	}

	// pre-order, children in insertion order
	want := []string{"b", "ba", "bb", "a", "aa", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}

	// stable for an unchanged tree
	for range 10 {
		if again := strs(tree.Keys(false)); !slices.Equal(got, again) {
			t.Fatalf("unordered walk not stable, got %v and %v", got, again)
		}
	}
}

func TestAllSorted(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	tree := new(Node[rune, int])
	for i, k := range random.Keys(prng, workLoadN(), random.DNA, 12) {
		_ = tree.Store(k, i)
	}

	var got []string
	for key := range tree.AllSorted() {
		got = append(got, string(key))
	}

	if !slices.IsSorted(got) {
		t.Errorf("AllSorted keys not sorted")
	}
	if len(got) != tree.Len() {
		t.Errorf("AllSorted, want %d keys, got %d", tree.Len(), len(got))
	}
	if len(slices.Compact(slices.Clone(got))) != len(got) {
		t.Errorf("AllSorted yields duplicate keys")
	}
}

func TestAllValues(t *testing.T) {
	t.Parallel()
	tree := wordTree(t)

	for key, val := range tree.All() {
		if got := tree.Fetch(key, -1); got != val {
			t.Errorf("All yields (%q, %d), Fetch returns %d", string(key), val, got)
		}
	}

	want := []int{0, 1, 2, 3, 4, 5, 6}
	if diff := cmp.Diff(want, tree.Values(true)); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestAllEarlyBreak(t *testing.T) {
	t.Parallel()
	tree := wordTree(t)

	count := 0
	for range tree.AllSorted() {
		count++
		if count == 3 {
			break
		}
	}

	if count != 3 {
		t.Errorf("break after 3, got %d", count)
	}
}

func TestAllKeysAreCopies(t *testing.T) {
	t.Parallel()
	tree := wordTree(t)

	var keys [][]rune
	for key := range tree.All() {
		keys = append(keys, key)
	}

	// overwrite the yielded keys, the tree and the siblings stay intact
	for _, key := range keys {
		for i := range key {
			key[i] = 'X'
		}
	}

	want := []string{"romane", "romanus", "romulus", "rubens", "ruber", "rubicon", "rubicundus"}
	if diff := cmp.Diff(want, strs(tree.Keys(true))); diff != "" {
		t.Errorf("tree changed by caller (-want +got):\n%s", diff)
	}
}

func TestAllRootValue(t *testing.T) {
	t.Parallel()
	tree := sampleTree(t)
	_ = tree.Store(nil, 0)

	next, stop := iter.Pull2(tree.All())
	defer stop()

	key, val, ok := next()
	if !ok || len(key) != 0 || val != 0 {
		t.Errorf("first entry must be the root, got (%q, %d, %v)", string(key), val, ok)
	}
}

func TestEach(t *testing.T) {
	t.Parallel()
	tree := sampleTree(t)

	var sb strings.Builder
	tree.Each(true, func(key []rune, val int) {
		sb.WriteString(string(key))
		sb.WriteByte('=')
		sb.WriteByte(byte('0' + val))
		sb.WriteByte(' ')
	})

	if got, want := sb.String(), "AAA=3 AB=1 ABBB=2 "; got != want {
		t.Errorf("Each, want %q, got %q", want, got)
	}

	var keys []string
	tree.EachKey(true, func(key []rune) { keys = append(keys, string(key)) })
	if diff := cmp.Diff([]string{"AAA", "AB", "ABBB"}, keys); diff != "" {
		t.Errorf("EachKey mismatch (-want +got):\n%s", diff)
	}

	sum := 0
	tree.EachValue(false, func(val int) { sum += val })
	if sum != 6 {
		t.Errorf("EachValue sum, want 6, got %d", sum)
	}
}

func TestToMap(t *testing.T) {
	t.Parallel()
	tree := sampleTree(t)

	want := map[string]int{"AB": 1, "ABBB": 2, "AAA": 3}
	if diff := cmp.Diff(want, StringMap(tree)); diff != "" {
		t.Errorf("StringMap mismatch (-want +got):\n%s", diff)
	}

	lens := ToMap(tree, func(key []rune) int { return len(key) })
	if diff := cmp.Diff(map[int]int{2: 1, 3: 3, 4: 2}, lens); diff != "" {
		t.Errorf("ToMap mismatch (-want +got):\n%s", diff)
	}

	// keys of a view include the view edge
	view := tree.FetchPrefix(rs("AB"))
	if diff := cmp.Diff(map[string]int{"AB": 1, "ABBB": 2}, StringMap(view)); diff != "" {
		t.Errorf("StringMap of view mismatch (-want +got):\n%s", diff)
	}
}

func TestGraphemeKeys(t *testing.T) {
	t.Parallel()
	tree := new(Node[string, int])

	// precomposed and decomposed o-umlaut
	words := []string{"K\u00f6ln", "Ko\u0308nig", "Kopf"}
	for i, w := range words {
		if err := tree.Store(textkey.Split(w, textkey.Graphemes), i); err != nil {
			t.Fatal(err)
		}
	}
	checkInvariants(t, tree)

	if got, ok := tree.Get(textkey.Split("Ko\u0308nig", textkey.Graphemes)); !ok || got != 1 {
		t.Errorf("Get(Ko\\u0308nig), want (1, true), got (%d, %v)", got, ok)
	}

	// the decomposed umlaut is a single element, only Kopf begins with Ko
	view := tree.FetchPrefix(textkey.Split("Ko", textkey.Graphemes))
	if diff := cmp.Diff(map[string]int{"Kopf": 2}, StringMap(view)); diff != "" {
		t.Errorf("FetchPrefix(Ko) mismatch (-want +got):\n%s", diff)
	}

	// after normalization both spellings are the same key
	_ = tree.Store(textkey.Split(textkey.Normalize("Ko\u0308ln"), textkey.Graphemes), 9)
	if got := tree.Fetch(textkey.Split("K\u00f6ln", textkey.Graphemes), -1); got != 9 {
		t.Errorf("normalized key, want 9, got %d", got)
	}
	if tree.Len() != 3 {
		t.Errorf("Len, want 3, got %d", tree.Len())
	}
}
