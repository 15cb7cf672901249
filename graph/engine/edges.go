package engine

import (
	"github.com/krotik/common/errorutil"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

/*
AddEdge requires source and target to be currently stored active Node
versions and inserts a fresh edge with a new uid, version 1 (spec section
4.3). componentRefs may be nil.
*/
func (m *Manager) AddEdge(typ model.Type, source, target identity.Uid, data model.Data,
	componentRefs []identity.Locator, t model.Instant) (model.Edge, error) {

	if !typ.Valid() {
		return model.Edge{}, errInvalidArgument("edge type must be a non-empty alphanumeric code")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	sourceNode, ok := m.findActiveNodeLocked(source)
	if !ok {
		return model.Edge{}, errInvalidArgument("edge source " + source.String() + " is not an active node")
	}

	targetNode, ok := m.findActiveNodeLocked(target)
	if !ok {
		return model.Edge{}, errInvalidArgument("edge target " + target.String() + " is not an active node")
	}

	refs, err := m.resolveComponentRefsLocked(componentRefs, t)
	if err != nil {
		return model.Edge{}, err
	}

	e := model.NewEdge(identity.NewUid(), typ, sourceNode, targetNode, data, refs, t)

	if !m.recordEdgeVersion(e) {
		return model.Edge{}, errInvalidArgument("could not add edge: endpoints not found in store")
	}

	return e, nil
}

/*
UpdateEdge expires the current active version at t and inserts version v+1
with the same source and target references (edge update is isolated:
endpoints are never touched - spec section 4.3).
*/
func (m *Manager) UpdateEdge(uid identity.Uid, typ model.Type, data model.Data,
	componentRefs []identity.Locator, t model.Instant) (model.Edge, error) {

	if !typ.Valid() {
		return model.Edge{}, errInvalidArgument("edge type must be a non-empty alphanumeric code")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	v, ok := m.findActiveEdgeLocked(uid)
	if !ok {
		return model.Edge{}, errNotFoundUid("edge", uid)
	}

	if t < v.Created {
		return model.Edge{}, errInvalidArgument("update instant precedes edge creation instant")
	}

	refs, err := m.resolveComponentRefsLocked(componentRefs, t)
	if err != nil {
		return model.Edge{}, err
	}

	m.expireEdgeRecordLocked(v, t)

	next := v.Next(typ, v.Source, v.Target, data, refs, t)

	errorutil.AssertTrue(m.recordEdgeVersion(next),
		"engine: invariant violation - could not insert updated edge version")

	return next, nil
}

/*
ExpireEdge marks the active version of uid expired at t. Isolated: endpoints
are not touched (spec section 4.3).
*/
func (m *Manager) ExpireEdge(uid identity.Uid, t model.Instant) (model.Edge, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	v, ok := m.findActiveEdgeLocked(uid)
	if !ok {
		return model.Edge{}, errNotFoundUid("edge", uid)
	}

	if t < v.Created {
		return model.Edge{}, errInvalidArgument("expire instant precedes edge creation instant")
	}

	expired := v.WithExpiry(t)
	m.expireEdgeRecordLocked(v, t)

	return expired, nil
}

/*
FindActiveEdge returns the active version of uid, if any.
*/
func (m *Manager) FindActiveEdge(uid identity.Uid) (model.Edge, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.findActiveEdgeLocked(uid)
}

func (m *Manager) findActiveEdgeLocked(uid identity.Uid) (model.Edge, bool) {
	versions := m.edgeVersions[uid]

	if len(versions) == 0 {
		return model.Edge{}, false
	}

	last := versions[len(versions)-1]

	if !last.IsActive() {
		return model.Edge{}, false
	}

	return last, true
}

/*
FindEdgeAt returns the edge version active at instant t.
*/
func (m *Manager) FindEdgeAt(uid identity.Uid, t model.Instant) (model.Edge, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	versions := m.edgeVersions[uid]

	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].ExistedAt(t) {
			return versions[i], true
		}
	}

	return model.Edge{}, false
}

/*
FindEdge returns the exact edge version addressed by loc, or a NotFound
error.
*/
func (m *Manager) FindEdge(loc identity.Locator) (model.Edge, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	versions := m.edgeVersions[loc.Uid]

	if loc.Version < 1 || loc.Version > len(versions) {
		return model.Edge{}, errNotFoundLocator("edge", loc)
	}

	return versions[loc.Version-1], nil
}

/*
FindEdgeVersions returns every version of uid, ascending by version.
*/
func (m *Manager) FindEdgeVersions(uid identity.Uid) []model.Edge {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	versions := m.edgeVersions[uid]
	out := make([]model.Edge, len(versions))
	copy(out, versions)

	return out
}

/*
AllActiveEdges returns the active version of every edge uid that has one.
*/
func (m *Manager) AllActiveEdges() []model.Edge {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]model.Edge, 0, len(m.edgeVersions))

	for _, versions := range m.edgeVersions {
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
resolveComponentRefsLocked validates that every supplied component locator
resolves to a component version that was active when the edge is created at
t (spec invariant 5), and returns the set form used by model.Edge.
*/
func (m *Manager) resolveComponentRefsLocked(refs []identity.Locator, t model.Instant) (map[identity.Locator]struct{}, error) {
	out := make(map[identity.Locator]struct{}, len(refs))

	for _, loc := range refs {
		c, ok := m.registry.ByLocator(loc)
		if !ok {
			return nil, errInvalidArgument("component reference " + loc.String() + " does not exist")
		}

		if !c.ExistedAt(t) {
			return nil, errInvalidArgument("component reference " + loc.String() + " was not active at the edge's creation instant")
		}

		out[loc] = struct{}{}
	}

	return out, nil
}
