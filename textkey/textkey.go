// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package textkey turns text into key sequences for a radix tree.
//
// A string is split either into its code points or into its grapheme
// clusters, the characters a reader perceives. With graphemes, "e" plus a
// combining accent or a flag emoji is one key element and a prefix query
// never ends in the middle of a character.
//
//	tree := new(radix.Node[string, int])
//	_ = tree.Store(textkey.Split("Köln", textkey.Graphemes), 1)
package textkey

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Mode selects how a string is split into key elements.
type Mode uint8

const (
	// Runes splits into Unicode code points.
	Runes Mode = iota

	// Graphemes splits into extended grapheme clusters.
	Graphemes
)

func (m Mode) String() string {
	switch m {
	case Runes:
		return "runes"
	case Graphemes:
		return "graphemes"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses the name of a mode, case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "runes", "rune":
		return Runes, nil
	case "graphemes", "grapheme":
		return Graphemes, nil
	default:
		return 0, fmt.Errorf("textkey: unknown split mode %q", s)
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Split returns the key elements of s. The result is empty for an empty
// string, the concatenation of the elements is s again.
func Split(s string, m Mode) []string {
	if m == Graphemes {
		return splitGraphemes(s)
	}
	return splitRunes(s)
}

func splitRunes(s string) []string {
	elems := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) != 0 {
		_, size := utf8.DecodeRuneInString(s)
		elems = append(elems, s[:size])
		s = s[size:]
	}
	return elems
}

func splitGraphemes(s string) []string {
	elems := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		elems = append(elems, gr.Str())
	}
	return elems
}

// Join concatenates key elements back to a string.
func Join(elems []string) string {
	return strings.Join(elems, "")
}

// Normalize returns the NFC normal form of s. Canonically equivalent
// strings, e.g. precomposed and decomposed umlauts, become equal keys.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
