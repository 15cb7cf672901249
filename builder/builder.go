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
Package builder assembles a *engine.Manager from repository-held history
without re-running any cascade: the repositories already hold the
post-cascade consistent state, so replaying it through add/update/expire
would be redundant at best and would re-mint fresh uids at worst. Load order
matters because the store requires an edge's exact endpoint version to
already be present: nodes, then edges, then components.
*/
package builder

import (
	"sort"

	"github.com/krotik/chronograph/graph/engine"
	"github.com/krotik/chronograph/graph/store"
	"github.com/krotik/chronograph/identity"
	"github.com/krotik/chronograph/repository"
)

/*
Load builds a fresh Manager from the full version history held in nodeRepo,
edgeRepo and componentRepo. listener may be nil.
*/
func Load(nodeRepo repository.NodeRepository, edgeRepo repository.EdgeRepository,
	componentRepo repository.ComponentRepository, listener store.Listener) (*engine.Manager, error) {

	m := engine.New(listener)

	for _, uid := range sortedIds(nodeRepo.AllIds()) {
		for _, n := range nodeRepo.FindVersions(uid) {
			m.LoadNodeVersion(n)
		}
	}

	for _, uid := range sortedIds(edgeRepo.AllIds()) {
		for _, e := range edgeRepo.FindVersions(uid) {
			if !m.LoadEdgeVersion(e) {
				return nil, &loadError{kind: "edge", uid: uid}
			}
		}
	}

	for _, uid := range sortedIds(componentRepo.AllIds()) {
		for _, c := range componentRepo.FindVersions(uid) {
			m.LoadComponentVersion(c)
		}
	}

	return m, nil
}

func sortedIds(ids []identity.Uid) []identity.Uid {
	out := append([]identity.Uid(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

/*
loadError reports a builder-stage failure: an edge version whose endpoint
was not found among the already-loaded node versions, which means the
persisted history itself violates spec invariant 3.
*/
type loadError struct {
	kind string
	uid  identity.Uid
}

func (e *loadError) Error() string {
	return "builder: could not load " + e.kind + " " + e.uid.String() + ": endpoint version not found in store"
}
