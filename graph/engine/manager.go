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
Package engine is the mutation engine: it exposes add/update/expire for
nodes, edges and components, enforces the cascade rules and invariants of
spec section 4.3 at a single caller-supplied timestamp, and provides the
finder operations every entity kind shares. This is the hard core of the
system (spec section 2).

The engine never consults the wall clock; every mutation takes its instant
as an explicit parameter (spec section 5).
*/
package engine

import (
	"sync"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/graph/registry"
	"github.com/krotik/chronograph/graph/store"
	"github.com/krotik/chronograph/identity"
)

/*
Manager is the mutation engine for a single session's graph store and
component registry. It is not safe for concurrent mutation from multiple
goroutines (spec section 5: single-writer cooperative scheduling); Manager
serializes its own operations with a mutex so that a caller who does use it
from multiple goroutines gets safe - if serialized - behavior rather than a
race.
*/
type Manager struct {
	mutex sync.Mutex

	store    *store.Store
	registry *registry.Registry

	nodeVersions map[identity.Uid][]model.Node
	edgeVersions map[identity.Uid][]model.Edge
}

/*
New creates a Manager over a fresh, empty in-memory store and component
registry. listener may be nil.
*/
func New(listener store.Listener) *Manager {
	return &Manager{
		store:        store.New(listener),
		registry:     registry.New(),
		nodeVersions: make(map[identity.Uid][]model.Node),
		edgeVersions: make(map[identity.Uid][]model.Edge),
	}
}

/*
Store returns the underlying graph store, for use by the temporal and path
query layers which read directly from it without going through the engine
(spec section 2: "Query paths bypass the mutation engine").
*/
func (m *Manager) Store() *store.Store {
	return m.store
}

/*
Registry returns the underlying component registry, for the same reason.
*/
func (m *Manager) Registry() *registry.Registry {
	return m.registry
}

/*
recordNodeVersion appends n to its uid's version history and writes it into
the store. Used for both fresh insertions and expired-twin overwrites
(which share a locator with the version they replace).
*/
func (m *Manager) recordNodeVersion(n model.Node) {
	history := m.nodeVersions[n.Uid()]

	if len(history) > 0 && history[len(history)-1].Locator == n.Locator {
		history[len(history)-1] = n
	} else {
		history = append(history, n)
	}

	m.nodeVersions[n.Uid()] = history
	m.store.AddVertex(n)
}

/*
recordEdgeVersion appends e to its uid's version history and writes it into
the store.
*/
func (m *Manager) recordEdgeVersion(e model.Edge) bool {
	if !m.store.AddEdge(e) {
		return false
	}

	history := m.edgeVersions[e.Uid()]

	if len(history) > 0 && history[len(history)-1].Locator == e.Locator {
		history[len(history)-1] = e
	} else {
		history = append(history, e)
	}

	m.edgeVersions[e.Uid()] = history

	return true
}
