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
Package temporal computes as-of views directly from the graph store and the
component registry, bypassing the mutation engine (spec section 2: "Query
paths bypass the mutation engine"). A component never physically enumerates
its elements; every view here is recomputed from edge component_refs at query
time (spec section 4.4).
*/
package temporal

import (
	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/graph/registry"
	"github.com/krotik/chronograph/graph/store"
	"github.com/krotik/chronograph/identity"
)

/*
View answers as-of queries over a fixed store and registry pair.
*/
type View struct {
	store    *store.Store
	registry *registry.Registry
}

/*
New creates a View over the given store and registry.
*/
func New(s *store.Store, r *registry.Registry) *View {
	return &View{store: s, registry: r}
}

/*
EdgesAsOf returns every edge version whose component_refs contains loc and
whose temporal window contains t (spec section 4.4's edges_as_of).
*/
func (v *View) EdgesAsOf(loc identity.Locator, t model.Instant) []model.Edge {
	var out []model.Edge

	for _, e := range v.store.AllEdges() {
		if !e.ExistedAt(t) {
			continue
		}
		if !e.ReferencesComponent(loc) {
			continue
		}
		out = append(out, e)
	}

	return out
}

/*
NodesAsOf returns the union of endpoints of EdgesAsOf(loc, t), filtered to
the Node versions that themselves existed at t (spec section 4.4's
nodes_as_of). An edge version existing at t does not guarantee its endpoint
node versions also do, since node and edge cascades are not required to
share an instant in every historical sequence.
*/
func (v *View) NodesAsOf(loc identity.Locator, t model.Instant) []model.Node {
	seen := make(map[identity.Locator]struct{})
	var out []model.Node

	collect := func(n model.Node) {
		// The edge holds the endpoint as it was when the edge was created;
		// the store holds the current record of that version, expiry included.
		if stored, ok := v.store.Vertex(n.Locator); ok {
			n = stored
		}
		if !n.ExistedAt(t) {
			return
		}
		if _, ok := seen[n.Locator]; ok {
			return
		}
		seen[n.Locator] = struct{}{}
		out = append(out, n)
	}

	for _, e := range v.EdgesAsOf(loc, t) {
		collect(e.Source)
		collect(e.Target)
	}

	return out
}

/*
EdgeAt returns the edge version of uid whose temporal window contains t,
breaking ties at a boundary instant towards the highest version (spec
section 4.3's finder rule), scanning the store directly.
*/
func (v *View) EdgeAt(uid identity.Uid, t model.Instant) (model.Edge, bool) {
	var best model.Edge
	var found bool

	for _, e := range v.store.AllEdges() {
		if e.Uid() != uid || !e.ExistedAt(t) {
			continue
		}
		if !found || e.Locator.Version > best.Locator.Version {
			best = e
			found = true
		}
	}

	return best, found
}

/*
NodeAt returns the node version of uid whose temporal window contains t,
with the same tie-break rule as EdgeAt.
*/
func (v *View) NodeAt(uid identity.Uid, t model.Instant) (model.Node, bool) {
	var best model.Node
	var found bool

	for _, n := range v.store.AllVertices() {
		if n.Uid() != uid || !n.ExistedAt(t) {
			continue
		}
		if !found || n.Locator.Version > best.Locator.Version {
			best = n
			found = true
		}
	}

	return best, found
}

/*
ComponentsForEdge returns the component version active at t for every
component_refs entry on the edge version active at t (spec section 4.4's
components_for, applied to an edge uid).
*/
func (v *View) ComponentsForEdge(uid identity.Uid, t model.Instant) []model.Component {
	e, ok := v.EdgeAt(uid, t)
	if !ok {
		return nil
	}

	return v.componentsReferencedBy(e, t)
}

/*
ComponentsForNode returns the union of ComponentsForEdge over every edge
incident to the node version active at t (spec section 4.4's
components_for, applied to a node uid).
*/
func (v *View) ComponentsForNode(uid identity.Uid, t model.Instant) []model.Component {
	n, ok := v.NodeAt(uid, t)
	if !ok {
		return nil
	}

	seen := make(map[identity.Locator]struct{})
	var out []model.Component

	for _, e := range v.store.EdgesOf(n.Locator) {
		if !e.ExistedAt(t) {
			continue
		}

		for _, c := range v.componentsReferencedBy(e, t) {
			if _, ok := seen[c.Locator]; ok {
				continue
			}
			seen[c.Locator] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}

func (v *View) componentsReferencedBy(e model.Edge, t model.Instant) []model.Component {
	var out []model.Component

	for ref := range e.ComponentRefs {
		if c, ok := v.registry.At(ref.Uid, t); ok {
			out = append(out, c)
		}
	}

	return out
}
