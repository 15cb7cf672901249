package model

/*
Path is the result of a path query: an ordered sequence alternating
Node, Edge, Node, ..., Node. A Path of a single node has no edges. Path
results hold the exact Node/Edge versions used so callers see the
temporally coherent snapshot they queried (spec section 4.5).
*/
type Path struct {
	nodes []Node
	edges []Edge
}

/*
NewPath constructs a Path from its alternating nodes and edges. len(nodes)
must equal len(edges)+1; callers within this module (graph/path) are
responsible for upholding that invariant.
*/
func NewPath(nodes []Node, edges []Edge) Path {
	return Path{nodes: append([]Node(nil), nodes...), edges: append([]Edge(nil), edges...)}
}

/*
Nodes returns the ordered nodes of this path.
*/
func (p Path) Nodes() []Node {
	return append([]Node(nil), p.nodes...)
}

/*
Edges returns the ordered edges of this path.
*/
func (p Path) Edges() []Edge {
	return append([]Edge(nil), p.edges...)
}

/*
Length returns the number of edges (hops) in this path.
*/
func (p Path) Length() int {
	return len(p.edges)
}

/*
Elements returns the path as an alternating slice of Elements:
[node, edge, node, ..., node].
*/
func (p Path) Elements() []Element {
	out := make([]Element, 0, len(p.nodes)+len(p.edges))

	for i, n := range p.nodes {
		out = append(out, NodeElement(n))

		if i < len(p.edges) {
			out = append(out, EdgeElement(p.edges[i]))
		}
	}

	return out
}
