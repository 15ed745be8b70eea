// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package radix

import (
	"errors"
	"fmt"
)

// ErrLocked is matched by every error returned from a mutating method
// called on a locked node.
var ErrLocked = errors.New("radix: node is locked")

// LockedTreeError is returned by Store, Assign, Delete and DeletePrefix
// when the targeted node is locked. Nothing has been modified.
type LockedTreeError struct {
	// Op is the name of the rejected method.
	Op string

	// Edge is the formatted edge label of the locked node.
	Edge string
}

func (e *LockedTreeError) Error() string {
	if e.Edge == "" {
		return fmt.Sprintf("radix: %s on locked root node", e.Op)
	}
	return fmt.Sprintf("radix: %s on locked node %q", e.Op, e.Edge)
}

// Unwrap returns ErrLocked.
func (e *LockedTreeError) Unwrap() error {
	return ErrLocked
}
