// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates random keys for tests and benchmarks.
//
// Small alphabets produce many keys sharing long prefixes and therefore
// many splits and merges in the tree under test.
package random

import (
	"math/rand/v2"
)

// Alphabets used by the tests.
var (
	Binary = []rune("ab")
	DNA    = []rune("ACGT")
	Lower  = []rune("abcdefghijklmnopqrstuvwxyz")
)

// Key returns a random key over alphabet, 0 <= len(key) <= maxLen.
func Key(prng *rand.Rand, alphabet []rune, maxLen int) []rune {
	key := make([]rune, prng.IntN(maxLen+1))
	for i := range key {
		key[i] = alphabet[prng.IntN(len(alphabet))]
	}
	return key
}

// Keys returns n random keys, duplicates are possible.
func Keys(prng *rand.Rand, n int, alphabet []rune, maxLen int) [][]rune {
	keys := make([][]rune, n)
	for i := range keys {
		keys[i] = Key(prng, alphabet, maxLen)
	}
	return keys
}
