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
Package model holds the immutable entity records of the versioned
property graph: Type, Data, Node, Edge, Component, Element and Path. None of
these types are ever mutated in place after construction; every "change" is
expressed by constructing a new value (spec invariant 6).
*/
package model

import "github.com/krotik/common/stringutil"

/*
Type is a non-empty domain tag attached to nodes, edges and components.
*/
type Type string

/*
Valid returns true if this Type is a non-empty alphanumeric code.
*/
func (t Type) Valid() bool {
	return t != "" && stringutil.IsAlphaNumeric(string(t))
}

/*
String returns the string representation of this Type.
*/
func (t Type) String() string {
	return string(t)
}
