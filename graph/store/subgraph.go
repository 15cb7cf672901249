package store

import (
	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

/*
Subgraph is a read-only view restricted to a given set of vertices and
edges, used by component validation and as-of queries (spec section 4.2).
It does not share the parent Store's mutex; it is a frozen snapshot.
*/
type Subgraph struct {
	vertices map[identity.Locator]model.Node
	edges    map[identity.Locator]model.Edge
}

/*
InducedSubgraph builds a Subgraph restricted to the given vertex and edge
locator sets. Edges whose endpoints are not in the store are simply skipped;
callers that need "every edge's endpoints are within the node set" checked
should use Subgraph.EdgesEscapingVertexSet.
*/
func (s *Store) InducedSubgraph(vertices, edges []identity.Locator) Subgraph {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	sg := Subgraph{
		vertices: make(map[identity.Locator]model.Node, len(vertices)),
		edges:    make(map[identity.Locator]model.Edge, len(edges)),
	}

	for _, vloc := range vertices {
		if n, ok := s.vertices[vloc]; ok {
			sg.vertices[vloc] = n
		}
	}

	for _, eloc := range edges {
		if e, ok := s.edges[eloc]; ok {
			sg.edges[eloc] = e
		}
	}

	return sg
}

/*
Vertices returns the vertices of this subgraph.
*/
func (sg Subgraph) Vertices() []model.Node {
	out := make([]model.Node, 0, len(sg.vertices))
	for _, n := range sg.vertices {
		out = append(out, n)
	}
	return out
}

/*
Edges returns the edges of this subgraph.
*/
func (sg Subgraph) Edges() []model.Edge {
	out := make([]model.Edge, 0, len(sg.edges))
	for _, e := range sg.edges {
		out = append(out, e)
	}
	return out
}

/*
EdgesEscapingVertexSet returns the edges of this subgraph whose source or
target locator is not in the vertex set.
*/
func (sg Subgraph) EdgesEscapingVertexSet() []model.Edge {
	var out []model.Edge

	for _, e := range sg.edges {
		if _, ok := sg.vertices[e.Source.Locator]; !ok {
			out = append(out, e)
			continue
		}
		if _, ok := sg.vertices[e.Target.Locator]; !ok {
			out = append(out, e)
		}
	}

	return out
}

/*
IsWeaklyConnected returns true if the subgraph, treating edges as undirected,
forms a single connected component across its vertex set. An empty vertex
set is not connected.
*/
func (sg Subgraph) IsWeaklyConnected() bool {
	if len(sg.vertices) == 0 {
		return false
	}

	adj := sg.undirectedAdjacency()

	var start identity.Locator
	for loc := range sg.vertices {
		start = loc
		break
	}

	visited := map[identity.Locator]struct{}{start: {}}
	queue := []identity.Locator{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range adj[cur] {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return len(visited) == len(sg.vertices)
}

/*
IsAcyclic returns true if the subgraph has no directed cycle (treating
direction as given, per spec section 4.3's validation hook).
*/
func (sg Subgraph) IsAcyclic() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[identity.Locator]int, len(sg.vertices))
	for loc := range sg.vertices {
		color[loc] = white
	}

	dirAdj := sg.directedAdjacency()

	var hasCycle bool

	var visit func(identity.Locator)
	visit = func(loc identity.Locator) {
		if hasCycle {
			return
		}

		color[loc] = gray

		for _, next := range dirAdj[loc] {
			switch color[next] {
			case gray:
				hasCycle = true
				return
			case white:
				visit(next)
				if hasCycle {
					return
				}
			}
		}

		color[loc] = black
	}

	for loc := range sg.vertices {
		if color[loc] == white {
			visit(loc)
			if hasCycle {
				return false
			}
		}
	}

	return true
}

func (sg Subgraph) undirectedAdjacency() map[identity.Locator][]identity.Locator {
	adj := make(map[identity.Locator][]identity.Locator)

	for _, e := range sg.edges {
		adj[e.Source.Locator] = append(adj[e.Source.Locator], e.Target.Locator)
		adj[e.Target.Locator] = append(adj[e.Target.Locator], e.Source.Locator)
	}

	return adj
}

func (sg Subgraph) directedAdjacency() map[identity.Locator][]identity.Locator {
	adj := make(map[identity.Locator][]identity.Locator)

	for _, e := range sg.edges {
		adj[e.Source.Locator] = append(adj[e.Source.Locator], e.Target.Locator)
	}

	return adj
}
