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
Package repository defines the external persistence boundary (spec section
6): one repository contract per entity kind, a listener contract the graph
store emits structural events into, and a session contract wrapping
handle/commit/rollback/close. The core never depends on a concrete backend;
MemoryNodes, MemoryEdges and MemoryComponents are the in-memory reference
adapters used by tests and by callers with no durability requirement.
*/
package repository

import (
	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/graph/store"
	"github.com/krotik/chronograph/identity"
)

/*
NodeRepository persists node versions.
*/
type NodeRepository interface {
	Save(n model.Node) error
	FindActive(uid identity.Uid) (model.Node, bool)
	FindAt(uid identity.Uid, t model.Instant) (model.Node, bool)
	Find(loc identity.Locator) (model.Node, error)
	FindVersions(uid identity.Uid) []model.Node
	Expire(uid identity.Uid, t model.Instant) bool
	Delete(uid identity.Uid) bool
	AllIds() []identity.Uid
	AllActiveIds() []identity.Uid
}

/*
EdgeRepository persists edge versions.
*/
type EdgeRepository interface {
	Save(e model.Edge) error
	FindActive(uid identity.Uid) (model.Edge, bool)
	FindAt(uid identity.Uid, t model.Instant) (model.Edge, bool)
	Find(loc identity.Locator) (model.Edge, error)
	FindVersions(uid identity.Uid) []model.Edge
	Expire(uid identity.Uid, t model.Instant) bool
	Delete(uid identity.Uid) bool
	AllIds() []identity.Uid
	AllActiveIds() []identity.Uid
}

/*
ComponentRepository persists component versions.
*/
type ComponentRepository interface {
	Save(c model.Component) error
	FindActive(uid identity.Uid) (model.Component, bool)
	FindAt(uid identity.Uid, t model.Instant) (model.Component, bool)
	Find(loc identity.Locator) (model.Component, error)
	FindVersions(uid identity.Uid) []model.Component
	Expire(uid identity.Uid, t model.Instant) bool
	Delete(uid identity.Uid) bool
	AllIds() []identity.Uid
	AllActiveIds() []identity.Uid
}

/*
Listener is the contract the graph store emits structural events into (spec
section 6), identical to graph/store's own Listener interface. A
repository-backed listener queues operations and applies them on Flush; the
session decides whether to Commit or Rollback what was queued.
*/
type Listener = store.Listener
