package store

import (
	"sync"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

/*
Store is an in-memory directed multigraph. Self-loops and parallel edges
between the same endpoints are both permitted (spec section 4.2). Store is
not safe for concurrent use beyond the single-writer-plus-readers model
described in spec section 5; callers serialize writes themselves (the
mutation engine takes the session lock).
*/
type Store struct {
	mutex sync.RWMutex

	vertices map[identity.Locator]model.Node
	edges    map[identity.Locator]model.Edge

	outgoing map[identity.Locator]map[identity.Locator]struct{} // node locator -> edge locators
	incoming map[identity.Locator]map[identity.Locator]struct{}

	listener Listener
}

/*
New creates an empty Store. listener may be nil.
*/
func New(listener Listener) *Store {
	return &Store{
		vertices: make(map[identity.Locator]model.Node),
		edges:    make(map[identity.Locator]model.Edge),
		outgoing: make(map[identity.Locator]map[identity.Locator]struct{}),
		incoming: make(map[identity.Locator]map[identity.Locator]struct{}),
		listener: listener,
	}
}

/*
AddVertex adds a node version to the store. Overwrites silently if a record
with the same locator is already present; the mutation engine does this to
replace a version with its expired twin.
*/
func (s *Store) AddVertex(n model.Node) {
	s.mutex.Lock()
	s.vertices[n.Locator] = n
	s.mutex.Unlock()

	if s.listener != nil {
		s.listener.VertexAdded(n)
	}
}

/*
RemoveVertex removes a node version from the store, along with any edge
versions incident to it in the store's own index.
*/
func (s *Store) RemoveVertex(loc identity.Locator) {
	s.mutex.Lock()

	n, ok := s.vertices[loc]
	if !ok {
		s.mutex.Unlock()
		return
	}

	delete(s.vertices, loc)

	incident := make([]model.Edge, 0)

	for eloc := range s.outgoing[loc] {
		incident = append(incident, s.edges[eloc])
	}
	for eloc := range s.incoming[loc] {
		if _, ok := s.outgoing[loc][eloc]; ok {
			continue // a self-loop is already listed from the outgoing index
		}
		incident = append(incident, s.edges[eloc])
	}

	delete(s.outgoing, loc)
	delete(s.incoming, loc)

	for _, e := range incident {
		s.removeEdgeLocked(e.Locator)
	}

	s.mutex.Unlock()

	if s.listener != nil {
		s.listener.VertexRemoved(n)

		for _, e := range incident {
			s.listener.EdgeRemoved(e)
		}
	}
}

/*
Vertex returns the node version stored at loc, if any.
*/
func (s *Store) Vertex(loc identity.Locator) (model.Node, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	n, ok := s.vertices[loc]
	return n, ok
}

/*
HasVertex returns true if loc is present in the store.
*/
func (s *Store) HasVertex(loc identity.Locator) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.vertices[loc]
	return ok
}

/*
AddEdge adds an edge version to the store. Fails (returns false) if either
endpoint's exact version is not present in the store (spec section 4.2).
*/
func (s *Store) AddEdge(e model.Edge) bool {
	s.mutex.Lock()

	if _, ok := s.vertices[e.Source.Locator]; !ok {
		s.mutex.Unlock()
		return false
	}

	if _, ok := s.vertices[e.Target.Locator]; !ok {
		s.mutex.Unlock()
		return false
	}

	s.edges[e.Locator] = e
	s.indexEdgeLocked(e)

	s.mutex.Unlock()

	if s.listener != nil {
		s.listener.EdgeAdded(e)
	}

	return true
}

/*
RemoveEdge removes an edge version from the store.
*/
func (s *Store) RemoveEdge(loc identity.Locator) {
	s.mutex.Lock()
	e, ok := s.edges[loc]
	if !ok {
		s.mutex.Unlock()
		return
	}

	s.removeEdgeLocked(loc)
	s.mutex.Unlock()

	if s.listener != nil {
		s.listener.EdgeRemoved(e)
	}
}

/*
Edge returns the edge version stored at loc, if any.
*/
func (s *Store) Edge(loc identity.Locator) (model.Edge, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	e, ok := s.edges[loc]
	return e, ok
}

/*
OutgoingEdges returns every edge version in the store whose source is
exactly the given node version.
*/
func (s *Store) OutgoingEdges(loc identity.Locator) []model.Edge {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]model.Edge, 0, len(s.outgoing[loc]))
	for eloc := range s.outgoing[loc] {
		out = append(out, s.edges[eloc])
	}
	return out
}

/*
IncomingEdges returns every edge version in the store whose target is
exactly the given node version.
*/
func (s *Store) IncomingEdges(loc identity.Locator) []model.Edge {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]model.Edge, 0, len(s.incoming[loc]))
	for eloc := range s.incoming[loc] {
		out = append(out, s.edges[eloc])
	}
	return out
}

/*
EdgesOf returns the union of OutgoingEdges and IncomingEdges for the given
node version, each edge listed once even for a self-loop.
*/
func (s *Store) EdgesOf(loc identity.Locator) []model.Edge {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	seen := make(map[identity.Locator]struct{})
	out := make([]model.Edge, 0)

	collect := func(set map[identity.Locator]struct{}) {
		for eloc := range set {
			if _, ok := seen[eloc]; ok {
				continue
			}
			seen[eloc] = struct{}{}
			out = append(out, s.edges[eloc])
		}
	}

	collect(s.outgoing[loc])
	collect(s.incoming[loc])

	return out
}

/*
AllVertices returns every node version currently in the store.
*/
func (s *Store) AllVertices() []model.Node {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]model.Node, 0, len(s.vertices))
	for _, n := range s.vertices {
		out = append(out, n)
	}
	return out
}

/*
AllEdges returns every edge version currently in the store.
*/
func (s *Store) AllEdges() []model.Edge {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]model.Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	return out
}

/*
removeEdgeLocked removes an edge from the edge map and both adjacency
indices. Caller must hold the write lock.
*/
func (s *Store) removeEdgeLocked(loc identity.Locator) {
	e, ok := s.edges[loc]
	if !ok {
		return
	}

	delete(s.edges, loc)

	if set, ok := s.outgoing[e.Source.Locator]; ok {
		delete(set, loc)
	}
	if set, ok := s.incoming[e.Target.Locator]; ok {
		delete(set, loc)
	}
}

/*
indexEdgeLocked adds an edge to both adjacency indices. Caller must hold the
write lock.
*/
func (s *Store) indexEdgeLocked(e model.Edge) {
	if s.outgoing[e.Source.Locator] == nil {
		s.outgoing[e.Source.Locator] = make(map[identity.Locator]struct{})
	}
	s.outgoing[e.Source.Locator][e.Locator] = struct{}{}

	if s.incoming[e.Target.Locator] == nil {
		s.incoming[e.Target.Locator] = make(map[identity.Locator]struct{})
	}
	s.incoming[e.Target.Locator][e.Locator] = struct{}{}
}
