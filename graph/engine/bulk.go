package engine

import (
	"github.com/krotik/chronograph/graph/model"
)

/*
LoadNodeVersion inserts a node version directly into the store and version
history, bypassing every cascade and validation rule. Intended for replaying
already-consistent history from persistence (see the builder package); a
caller assembling new data should use AddNode/UpdateNode/ExpireNode instead.
*/
func (m *Manager) LoadNodeVersion(n model.Node) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.recordNodeVersion(n)
}

/*
LoadEdgeVersion inserts an edge version directly into the store and version
history, bypassing every cascade and validation rule. Returns false if the
edge's exact source or target version is not yet present in the store (the
caller must load node versions before the edges that reference them).
*/
func (m *Manager) LoadEdgeVersion(e model.Edge) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.recordEdgeVersion(e)
}

/*
LoadComponentVersion inserts a component version directly into the
registry, bypassing the rewrite cascade.
*/
func (m *Manager) LoadComponentVersion(c model.Component) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.registry.Put(c)
}
