/*
 * Chronograph
 *
 * Copyright 2026 The Chronograph Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package util contains the shared error model for the graph engine.

GraphError

Models a graph related error. Low-level errors are wrapped in a GraphError
before they are returned to a client so that callers can compare against one
of the sentinel Type values below.
*/
package util

import (
	"errors"
	"fmt"
)

/*
GraphError is a graph related error. Type is a sentinel suitable for equal
checks (or errors.Is); Detail carries the diagnosable context (uid, locator,
timestamp, ...) required by spec section 7.
*/
type GraphError struct {
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (ge *GraphError) Error() string {
	if ge.Detail != "" {
		return fmt.Sprintf("GraphError: %v (%v)", ge.Type, ge.Detail)
	}

	return fmt.Sprintf("GraphError: %v", ge.Type)
}

/*
Unwrap exposes the sentinel Type so callers can use errors.Is.
*/
func (ge *GraphError) Unwrap() error {
	return ge.Type
}

/*
Graph error kinds.
*/
var (

	// ErrNotFound is returned when a required uid, locator, or active
	// version does not exist.
	ErrNotFound = errors.New("Entity not found")

	// ErrInvalidArgument is returned when component subgraph validation
	// fails, or a referenced endpoint is not in the store.
	ErrInvalidArgument = errors.New("Invalid argument")

	// ErrInvariantViolation is returned when a cascade would produce a
	// state violating a documented invariant. This indicates a programming
	// error in the engine and must never be swallowed.
	ErrInvariantViolation = errors.New("Invariant violation")

	// ErrBackend is returned when the repository or listener contract
	// raises during a mutation. Treated as fatal for the current mutation;
	// no partial state is exposed.
	ErrBackend = errors.New("Backend error")
)
