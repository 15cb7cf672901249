package engine

import (
	"github.com/krotik/common/errorutil"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/graph/util"
	"github.com/krotik/chronograph/identity"
)

/*
AddNode mints a new uid and inserts its first version (spec section 4.3).
*/
func (m *Manager) AddNode(typ model.Type, data model.Data, t model.Instant) (model.Node, error) {
	if !typ.Valid() {
		return model.Node{}, errInvalidArgument("node type must be a non-empty alphanumeric code")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	n := model.NewNode(identity.NewUid(), typ, data, t)
	m.recordNodeVersion(n)

	return n, nil
}

/*
UpdateNode requires an active version of uid and performs the five-step
cascade of spec section 4.3: snapshot incident active edges, expire them,
replace the active node with its expired twin, insert the next version, and
recreate the incident edges pointing at the new version.
*/
func (m *Manager) UpdateNode(uid identity.Uid, typ model.Type, data model.Data, t model.Instant) (model.Node, error) {
	if !typ.Valid() {
		return model.Node{}, errInvalidArgument("node type must be a non-empty alphanumeric code")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.updateNodeLocked(uid, typ, data, t, nil)
}

/*
updateNodeLocked performs the node update cascade. handled is the set of
edge uids a caller (e.g. a nested cascade) has already rewritten and which
must be skipped here so that no edge is rewritten twice in a single mutation
call (spec section 4.3's cascade ordering discipline). Top-level callers
pass nil.
*/
func (m *Manager) updateNodeLocked(uid identity.Uid, typ model.Type, data model.Data,
	t model.Instant, handled map[identity.Uid]struct{}) (model.Node, error) {

	v, ok := m.findActiveNodeLocked(uid)
	if !ok {
		return model.Node{}, errNotFoundUid("node", uid)
	}

	if t < v.Created {
		return model.Node{}, errInvalidArgument("update instant precedes node creation instant")
	}

	// Step 1: snapshot the active incident edges, deduplicated (a self-loop
	// appears in both the outgoing and incoming index for the same locator).

	incident := m.activeIncidentEdgesLocked(v.Locator, handled)

	// Step 2: expire every active incident edge at t.

	for _, e := range incident {
		m.expireEdgeRecordLocked(e, t)
	}

	// Step 3: replace v with its expired twin.

	m.recordNodeVersion(v.WithExpiry(t))

	// Step 4: insert the new active version.

	next := v.Next(typ, data, t)
	m.recordNodeVersion(next)

	// Step 5: recreate each incident edge pointing at the new version on
	// whichever endpoint referred to v, preserving type/data/component refs.

	for _, e := range incident {
		newSource := e.Source
		if newSource.Locator == v.Locator {
			newSource = next
		}

		newTarget := e.Target
		if newTarget.Locator == v.Locator {
			newTarget = next
		}

		rewritten := e.Next(e.Type, newSource, newTarget, e.Data, e.ComponentRefs, t)

		errorutil.AssertTrue(m.recordEdgeVersion(rewritten),
			"engine: invariant violation - could not recreate incident edge during node update: "+rewritten.Locator.String())
	}

	return next, nil
}

/*
ExpireNode marks the active version of uid expired at t. Every edge incident
to that exact node version is expired at t as well (spec section 4.3); no
new node or edge versions are inserted.
*/
func (m *Manager) ExpireNode(uid identity.Uid, t model.Instant) (model.Node, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	v, ok := m.findActiveNodeLocked(uid)
	if !ok {
		return model.Node{}, errNotFoundUid("node", uid)
	}

	if t < v.Created {
		return model.Node{}, errInvalidArgument("expire instant precedes node creation instant")
	}

	incident := m.activeIncidentEdgesLocked(v.Locator, nil)

	for _, e := range incident {
		m.expireEdgeRecordLocked(e, t)
	}

	expired := v.WithExpiry(t)
	m.recordNodeVersion(expired)

	return expired, nil
}

/*
FindActiveNode returns the active version of uid, if any.
*/
func (m *Manager) FindActiveNode(uid identity.Uid) (model.Node, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.findActiveNodeLocked(uid)
}

func (m *Manager) findActiveNodeLocked(uid identity.Uid) (model.Node, bool) {
	versions := m.nodeVersions[uid]

	if len(versions) == 0 {
		return model.Node{}, false
	}

	last := versions[len(versions)-1]

	if !last.IsActive() {
		return model.Node{}, false
	}

	return last, true
}

/*
FindNodeAt returns the node version active at instant t, using the
half-open window [created, expired). Ties at a boundary break to the
highest version (spec section 4.3).
*/
func (m *Manager) FindNodeAt(uid identity.Uid, t model.Instant) (model.Node, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	versions := m.nodeVersions[uid]

	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].ExistedAt(t) {
			return versions[i], true
		}
	}

	return model.Node{}, false
}

/*
FindNode returns the exact node version addressed by loc, or a NotFound
error - unlike the other finders, the caller has asserted the locator
should exist (spec section 7).
*/
func (m *Manager) FindNode(loc identity.Locator) (model.Node, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	versions := m.nodeVersions[loc.Uid]

	if loc.Version < 1 || loc.Version > len(versions) {
		return model.Node{}, errNotFoundLocator("node", loc)
	}

	return versions[loc.Version-1], nil
}

/*
FindNodeVersions returns every version of uid, ascending by version.
*/
func (m *Manager) FindNodeVersions(uid identity.Uid) []model.Node {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	versions := m.nodeVersions[uid]
	out := make([]model.Node, len(versions))
	copy(out, versions)

	return out
}

/*
AllActiveNodes returns the active version of every node uid that has one.
*/
func (m *Manager) AllActiveNodes() []model.Node {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]model.Node, 0, len(m.nodeVersions))

	for _, versions := range m.nodeVersions {
		if len(versions) == 0 {
			continue
		}

		last := versions[len(versions)-1]
		if last.IsActive() {
			out = append(out, last)
		}
	}

	return out
}

/*
activeIncidentEdgesLocked returns the deduplicated, active edges incident to
the given node locator, excluding any edge uid present in skip.
*/
func (m *Manager) activeIncidentEdgesLocked(loc identity.Locator, skip map[identity.Uid]struct{}) []model.Edge {
	seen := make(map[identity.Uid]struct{})
	var out []model.Edge

	collect := func(edges []model.Edge) {
		for _, e := range edges {
			if !e.IsActive() {
				continue
			}
			if _, ok := seen[e.Uid()]; ok {
				continue
			}
			if skip != nil {
				if _, ok := skip[e.Uid()]; ok {
					continue
				}
			}
			seen[e.Uid()] = struct{}{}
			out = append(out, e)
		}
	}

	collect(m.store.OutgoingEdges(loc))
	collect(m.store.IncomingEdges(loc))

	return out
}

/*
expireEdgeRecordLocked overwrites the given active edge version with an
expired twin at t, recording it in the version history. Used by both the
node-update/expire cascade and the component-update cascade.
*/
func (m *Manager) expireEdgeRecordLocked(e model.Edge, t model.Instant) {
	if !m.recordEdgeVersion(e.WithExpiry(t)) {
		errorutil.AssertOk(&util.GraphError{
			Type:   util.ErrInvariantViolation,
			Detail: "could not expire incident edge " + e.Locator.String(),
		})
	}
}
