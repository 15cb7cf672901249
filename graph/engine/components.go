package engine

import (
	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

/*
AddComponent mints a new component uid and inserts its first version (spec
section 4.3). The component starts with no referencing edges; callers attach
it to edges by passing its locator as a component reference to AddEdge or
UpdateEdge.
*/
func (m *Manager) AddComponent(typ model.Type, data model.Data, t model.Instant) (model.Component, error) {
	if !typ.Valid() {
		return model.Component{}, errInvalidArgument("component type must be a non-empty alphanumeric code")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	c := model.NewComponent(identity.NewUid(), typ, data, t)
	m.registry.Put(c)

	return c, nil
}

/*
UpdateComponent expires the active version at t, inserts version v+1, and
rewrites component_refs to the new locator on every active edge that
referenced the old one (spec section 4.3's "rewrite" cascade). Each edge is
touched at most once.
*/
func (m *Manager) UpdateComponent(uid identity.Uid, typ model.Type, data model.Data, t model.Instant) (model.Component, error) {
	if !typ.Valid() {
		return model.Component{}, errInvalidArgument("component type must be a non-empty alphanumeric code")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	v, ok := m.registry.Active(uid)
	if !ok {
		return model.Component{}, errNotFoundUid("component", uid)
	}

	if t < v.Created {
		return model.Component{}, errInvalidArgument("update instant precedes component creation instant")
	}

	m.registry.Put(v.WithExpiry(t))

	next := v.Next(typ, data, t)
	m.registry.Put(next)

	m.rewriteComponentReferencesLocked(v.Locator, next.Locator, t, make(map[identity.Uid]struct{}))

	return next, nil
}

/*
ExpireComponent marks the active version expired at t. component_refs on
referencing edges are left untouched: the edges simply reference a locator
that is now a historical, expired component version, which remains a valid
as-of target (spec section 4.3: component.expire does not cascade to edges).
*/
func (m *Manager) ExpireComponent(uid identity.Uid, t model.Instant) (model.Component, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	v, ok := m.registry.Active(uid)
	if !ok {
		return model.Component{}, errNotFoundUid("component", uid)
	}

	if t < v.Created {
		return model.Component{}, errInvalidArgument("expire instant precedes component creation instant")
	}

	expired := v.WithExpiry(t)
	m.registry.Put(expired)

	return expired, nil
}

/*
FindActiveComponent returns the active version of uid, if any.
*/
func (m *Manager) FindActiveComponent(uid identity.Uid) (model.Component, bool) {
	return m.registry.Active(uid)
}

/*
FindComponentAt returns the component version active at instant t.
*/
func (m *Manager) FindComponentAt(uid identity.Uid, t model.Instant) (model.Component, bool) {
	return m.registry.At(uid, t)
}

/*
FindComponent returns the exact component version addressed by loc, or a
NotFound error.
*/
func (m *Manager) FindComponent(loc identity.Locator) (model.Component, error) {
	c, ok := m.registry.ByLocator(loc)
	if !ok {
		return model.Component{}, errNotFoundLocator("component", loc)
	}

	return c, nil
}

/*
FindComponentVersions returns every version of uid, ascending by version.
*/
func (m *Manager) FindComponentVersions(uid identity.Uid) []model.Component {
	return m.registry.Versions(uid)
}

/*
AllActiveComponents returns the active version of every component uid that
has one.
*/
func (m *Manager) AllActiveComponents() []model.Component {
	return m.registry.AllActive()
}
