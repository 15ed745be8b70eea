// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package index loads word lists into a radix tree with textual keys.
//
// Every line of a word list is either a key or a key and a value
// separated by a tab. Empty lines and lines starting with # are skipped.
// A key without value gets its position, file:line, as value.
package index

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gaissmai/radix"
	"github.com/gaissmai/radix/textkey"
)

// Index is a radix tree with string keys split by a textkey.Mode.
type Index struct {
	tree      *radix.Node[string, string]
	mode      textkey.Mode
	normalize bool
}

// New returns an empty index.
func New(mode textkey.Mode, normalize bool) *Index {
	return &Index{
		tree:      radix.New[string, string](),
		mode:      mode,
		normalize: normalize,
	}
}

// Key splits s into the key elements of the index.
func (ix *Index) Key(s string) []string {
	if ix.normalize {
		s = textkey.Normalize(s)
	}
	return textkey.Split(s, ix.mode)
}

// Tree returns the underlying tree.
func (ix *Index) Tree() *radix.Node[string, string] {
	return ix.tree
}

// Store inserts or overwrites key.
func (ix *Index) Store(key, val string) error {
	return ix.tree.Store(ix.Key(key), val)
}

// Load reads a word list from r, name is used for the positional values
// and in errors. Returns the number of lines stored.
func (ix *Index) Load(ctx context.Context, r io.Reader, name string) (int, error) {
	logger := zerolog.Ctx(ctx)

	scanner := bufio.NewScanner(r)
	lineNo, stored := 0, 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimRight(scanner.Text(), "\r")
		if len(strings.TrimSpace(line)) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, found := strings.Cut(line, "\t")
		if !found {
			val = fmt.Sprintf("%s:%d", name, lineNo)
		}

		if err := ix.Store(key, val); err != nil {
			return stored, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		stored++
	}

	if err := scanner.Err(); err != nil {
		return stored, fmt.Errorf("failed reading %s: %w", name, err)
	}

	logger.Debug().Str("_file", name).Int("_lines", lineNo).Int("_stored", stored).Msg("Word list loaded")

	return stored, nil
}

// LoadFiles loads all files in order, later entries overwrite earlier ones.
func (ix *Index) LoadFiles(ctx context.Context, files []string) error {
	for _, file := range files {
		if err := ix.loadFile(ctx, file); err != nil {
			return err
		}
	}

	zerolog.Ctx(ctx).Info().Int("_files", len(files)).Int("_entries", ix.tree.Len()).Msg("Index loaded")

	return nil
}

func (ix *Index) loadFile(ctx context.Context, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = ix.Load(ctx, f, file)
	return err
}

// Get returns the value of key.
func (ix *Index) Get(key string) (string, bool) {
	return ix.tree.Get(ix.Key(key))
}

// Prefix returns a locked view of all entries starting with prefix.
func (ix *Index) Prefix(prefix string) *radix.Node[string, string] {
	return ix.tree.FetchPrefix(ix.Key(prefix))
}

// Longest returns the longest indexed key being a prefix of key.
func (ix *Index) Longest(key string) (prefix, val string, ok bool) {
	elems, val, ok := ix.tree.LongestPrefix(ix.Key(key))
	if !ok {
		return "", "", false
	}
	return textkey.Join(elems), val, true
}
