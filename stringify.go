// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/gaissmai/radix/internal/value"
)

// rootLabel marks an unlabeled root in tree diagrams.
const rootLabel = "▼"

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Node.Fprint].
func (n *Node[E, V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := n.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the subtree rooted at n
// as string, just a wrapper for [Node.Fprint].
// If Fprint returns an error, String panics.
func (n *Node[E, V]) String() string {
	w := new(strings.Builder)
	if err := n.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the subtree rooted at n
// with default formatted payload V to w. If w is nil, Fprint panics.
// An empty tree writes nothing.
//
// Every line is one node, labeled with its edge and, if terminal, its
// value. Children are listed in ascending order. Zero-sized payloads,
// e.g. struct{}, are not printed.
//
//	▼
//	└── A
//	    ├── AA (3)
//	    └── B (1)
//	        └── BB (2)
func (n *Node[E, V]) Fprint(w io.Writer) error {
	if n == nil || n.IsEmpty() {
		return nil
	}

	label := rootLabel
	if len(n.edge) != 0 {
		label = n.label(value.IsZST[V]())
	} else if n.terminal && !value.IsZST[V]() {
		label = fmt.Sprintf("%s (%v)", rootLabel, n.value)
	}

	tree := treeprint.NewWithRoot(label)
	n.fprintRec(tree, value.IsZST[V]())

	_, err := w.Write(tree.Bytes())
	return err
}

// fprintRec, rec-descent the children in ascending order.
func (n *Node[E, V]) fprintRec(tree treeprint.Tree, isZST bool) {
	for _, k := range n.childKeys(true) {
		kid := n.children[k]

		if kid.IsLeaf() {
			tree.AddNode(kid.label(isZST))
			continue
		}

		kid.fprintRec(tree.AddBranch(kid.label(isZST)), isZST)
	}
}

// label returns the edge and, if terminal and not zero-sized, the value.
func (n *Node[E, V]) label(isZST bool) string {
	if !n.terminal || isZST {
		return formatKey(n.edge)
	}
	return fmt.Sprintf("%s (%v)", formatKey(n.edge), n.value)
}
