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
Package identity provides the stable identifiers and locators which every
entity in the graph is addressed by.

Uid

A Uid is an opaque, stable identifier for a logical entity. It never changes
across versions of that entity.

Locator

A Locator pairs a Uid with a version number. Versions are dense and start at
1; a Locator addresses one specific, immutable version of an entity.
*/
package identity

import (
	"crypto/rand"
)

/*
uidAlphabet is the URL-safe alphabet used to render a Uid. 64 symbols allow
each byte of randomness to map to exactly one symbol.
*/
const uidAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

/*
uidLength is the number of symbols in a rendered Uid. At 64 symbols per
position the collision probability for billions of ids is negligible.
*/
const uidLength = 21

/*
Uid is an opaque stable identifier for a logical entity. Two Uids are equal
if and only if their string representations are equal.
*/
type Uid string

/*
NewUid mints a fresh Uid using a CSPRNG. Panics if the system entropy source
cannot be read, which should never happen on a functioning host.
*/
func NewUid() Uid {
	buf := make([]byte, uidLength)

	if _, err := rand.Read(buf); err != nil {
		panic("identity: could not read random bytes: " + err.Error())
	}

	out := make([]byte, uidLength)

	for i, b := range buf {
		out[i] = uidAlphabet[int(b)%len(uidAlphabet)]
	}

	return Uid(out)
}

/*
String returns the string representation of this Uid.
*/
func (u Uid) String() string {
	return string(u)
}

/*
IsZero returns true if this Uid is the empty value.
*/
func (u Uid) IsZero() bool {
	return u == ""
}
