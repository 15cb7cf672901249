package engine

import (
	"github.com/krotik/chronograph/identity"
)

/*
ValidateComponentSubgraph is the validation hook for user-constructed
components (spec section 4.3). A client asserting that a given set of edge
locators and endpoint node locators forms a valid component subgraph gets
back an InvalidArgument error naming the first violated constraint, or nil
if the subgraph is valid:

  - the node set is non-empty;
  - every edge's endpoints lie within the node set;
  - the induced subgraph is weakly connected;
  - the induced subgraph is acyclic, treating direction as given.

Self-loop edges are permitted by the edge operations but make the induced
subgraph cyclic, so they are rejected here.
*/
func (m *Manager) ValidateComponentSubgraph(nodes, edges []identity.Locator) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(nodes) == 0 {
		return errInvalidArgument("component subgraph must contain at least one node")
	}

	sg := m.store.InducedSubgraph(nodes, edges)

	if escaping := sg.EdgesEscapingVertexSet(); len(escaping) > 0 {
		return errInvalidArgument("component subgraph has edges whose endpoints are outside the node set")
	}

	if !sg.IsWeaklyConnected() {
		return errInvalidArgument("component subgraph is not weakly connected")
	}

	if !sg.IsAcyclic() {
		return errInvalidArgument("component subgraph is not acyclic")
	}

	return nil
}
