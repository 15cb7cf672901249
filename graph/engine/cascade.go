package engine

import (
	"github.com/krotik/common/errorutil"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

/*
rewriteComponentReferencesLocked rewrites component_refs on every active edge
that references oldLoc, replacing it with newLoc, at instant t. Each edge is
rewritten at most once: handled records the edge uids already touched by this
mutation call so a shared edge referencing the component twice (impossible
today, since ComponentRefs is a set, but also guarding against a future
multi-component cascade pass) is never rewritten twice (spec section 4.3's
"rewrite" cascade, as opposed to the node->edge "strong" cascade).
*/
func (m *Manager) rewriteComponentReferencesLocked(oldLoc, newLoc identity.Locator,
	t model.Instant, handled map[identity.Uid]struct{}) {

	for _, e := range m.activeEdgesReferencingLocked(oldLoc, handled) {
		handled[e.Uid()] = struct{}{}

		rewritten := e.WithRewrittenComponentRef(oldLoc, newLoc)
		next := e.Next(e.Type, e.Source, e.Target, e.Data, rewritten, t)

		m.expireEdgeRecordLocked(e, t)

		errorutil.AssertTrue(m.recordEdgeVersion(next),
			"engine: invariant violation - could not rewrite component reference on edge "+e.Locator.String())
	}
}

/*
activeEdgesReferencingLocked scans every active edge for a ComponentRefs entry
matching loc, skipping edge uids already present in skip.
*/
func (m *Manager) activeEdgesReferencingLocked(loc identity.Locator, skip map[identity.Uid]struct{}) []model.Edge {
	var out []model.Edge

	for _, versions := range m.edgeVersions {
		if len(versions) == 0 {
			continue
		}

		e := versions[len(versions)-1]

		if !e.IsActive() {
			continue
		}

		if _, ok := skip[e.Uid()]; ok {
			continue
		}

		if e.ReferencesComponent(loc) {
			out = append(out, e)
		}
	}

	return out
}
