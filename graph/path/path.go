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
Package path implements the path operations of spec section 4.5 over the
currently active subgraph, or over an explicit node/edge snapshot supplied by
the caller (e.g. a temporal as-of view). No third-party graph library in the
retrieved corpus exposes a weighted shortest-path primitive, so the priority
queue is built on the standard library's container/heap, same as the rest of
the core relies on the standard library only where the pack offers nothing
domain-specific to reach for.
*/
package path

import (
	"container/heap"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/graph/store"
	"github.com/krotik/chronograph/identity"
)

/*
Graph is the read-only view path operations walk. FromActiveStore builds one
from a live Store restricted to currently active vertices/edges; FromSnapshot
builds one from an explicit as-of snapshot (e.g. from graph/temporal).
*/
type Graph struct {
	nodes map[identity.Uid]model.Node
	edges map[identity.Uid][]model.Edge // by source uid, for directed traversal
	all   []model.Edge
}

/*
FromActiveStore builds a Graph over every currently active node and edge in
s (spec section 4.5: "over the currently active subgraph").
*/
func FromActiveStore(s *store.Store) *Graph {
	g := &Graph{
		nodes: make(map[identity.Uid]model.Node),
		edges: make(map[identity.Uid][]model.Edge),
	}

	for _, n := range s.AllVertices() {
		if n.IsActive() {
			g.nodes[n.Uid()] = n
		}
	}

	for _, e := range s.AllEdges() {
		if !e.IsActive() {
			continue
		}
		if _, ok := g.nodes[e.Source.Uid()]; !ok {
			continue
		}
		if _, ok := g.nodes[e.Target.Uid()]; !ok {
			continue
		}
		g.edges[e.Source.Uid()] = append(g.edges[e.Source.Uid()], e)
		g.all = append(g.all, e)
	}

	return g
}

/*
FromSnapshot builds a Graph over an explicit set of node and edge versions
(e.g. a temporal as-of view). Edges whose endpoints are not both present in
nodes are dropped.
*/
func FromSnapshot(nodes []model.Node, edges []model.Edge) *Graph {
	g := &Graph{
		nodes: make(map[identity.Uid]model.Node, len(nodes)),
		edges: make(map[identity.Uid][]model.Edge),
	}

	for _, n := range nodes {
		g.nodes[n.Uid()] = n
	}

	for _, e := range edges {
		if _, ok := g.nodes[e.Source.Uid()]; !ok {
			continue
		}
		if _, ok := g.nodes[e.Target.Uid()]; !ok {
			continue
		}
		g.edges[e.Source.Uid()] = append(g.edges[e.Source.Uid()], e)
		g.all = append(g.all, e)
	}

	return g
}

/*
undirectedNeighbors returns every edge incident to uid, treating edges as
undirected; callers use Edge.OtherEnd to find the neighbor.
*/
func (g *Graph) undirectedNeighbors(uid identity.Uid) []model.Edge {
	var out []model.Edge

	for _, e := range g.all {
		if e.Source.Uid() == uid || e.Target.Uid() == uid {
			out = append(out, e)
		}
	}

	return out
}

/*
PathExists reports undirected weak connectivity between s and t (spec
section 4.5's path_exists). A node is always reachable from itself.
*/
func (g *Graph) PathExists(s, t identity.Uid) bool {
	if s == t {
		_, ok := g.nodes[s]
		return ok
	}

	if _, ok := g.nodes[s]; !ok {
		return false
	}
	if _, ok := g.nodes[t]; !ok {
		return false
	}

	visited := map[identity.Uid]struct{}{s: {}}
	queue := []identity.Uid{s}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == t {
			return true
		}

		for _, e := range g.undirectedNeighbors(cur) {
			next := e.OtherEnd(cur)
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return false
}

type pqItem struct {
	uid    identity.Uid
	dist   int
	via    model.Edge
	hasVia bool
	index  int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

/*
ShortestPath runs Dijkstra with unit edge weights over the directed graph
(spec section 4.5), returning the alternating [node, edge, node, ...] path
and true, or (zero value, false) if t is unreachable from s.
*/
func (g *Graph) ShortestPath(s, t identity.Uid) (model.Path, bool) {
	if _, ok := g.nodes[s]; !ok {
		return model.Path{}, false
	}
	if _, ok := g.nodes[t]; !ok {
		return model.Path{}, false
	}

	dist := map[identity.Uid]int{s: 0}
	cameVia := make(map[identity.Uid]model.Edge)
	cameFrom := make(map[identity.Uid]identity.Uid)
	visited := make(map[identity.Uid]struct{})

	pq := &priorityQueue{{uid: s, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*pqItem)

		if _, ok := visited[cur.uid]; ok {
			continue
		}
		visited[cur.uid] = struct{}{}

		if cur.uid == t {
			break
		}

		for _, e := range g.edges[cur.uid] {
			next := e.Target.Uid()

			if _, ok := visited[next]; ok {
				continue
			}

			nd := dist[cur.uid] + 1

			if existing, ok := dist[next]; !ok || nd < existing {
				dist[next] = nd
				cameVia[next] = e
				cameFrom[next] = cur.uid
				heap.Push(pq, &pqItem{uid: next, dist: nd})
			}
		}
	}

	if _, ok := dist[t]; !ok {
		return model.Path{}, false
	}

	var nodes []model.Node
	var edges []model.Edge

	for uid := t; ; {
		nodes = append([]model.Node{g.nodes[uid]}, nodes...)

		prev, ok := cameFrom[uid]
		if !ok {
			break
		}

		edges = append([]model.Edge{cameVia[uid]}, edges...)
		uid = prev
	}

	return model.NewPath(nodes, edges), true
}

/*
AllPaths enumerates every simple directed path from s to t, bounded by |V|
edges (spec section 4.5). The DFS only ever extends into unvisited vertices,
which already excludes cycles; the revisit filter documented by the spec is
therefore a no-op safety net rather than a load-bearing check, and is kept
for fidelity to the spec wording.
*/
func (g *Graph) AllPaths(s, t identity.Uid) []model.Path {
	if _, ok := g.nodes[s]; !ok {
		return nil
	}
	if _, ok := g.nodes[t]; !ok {
		return nil
	}

	var out []model.Path

	visited := map[identity.Uid]struct{}{s: {}}
	nodeStack := []model.Node{g.nodes[s]}
	edgeStack := []model.Edge{}

	var dfs func(cur identity.Uid)
	dfs = func(cur identity.Uid) {
		if len(nodeStack) > len(g.nodes) {
			return
		}

		if cur == t {
			if pathIsSimple(nodeStack) {
				out = append(out, model.NewPath(append([]model.Node{}, nodeStack...), append([]model.Edge{}, edgeStack...)))
			}
			return
		}

		for _, e := range g.edges[cur] {
			next := e.Target.Uid()

			if _, ok := visited[next]; ok {
				continue
			}

			visited[next] = struct{}{}
			nodeStack = append(nodeStack, g.nodes[next])
			edgeStack = append(edgeStack, e)

			dfs(next)

			edgeStack = edgeStack[:len(edgeStack)-1]
			nodeStack = nodeStack[:len(nodeStack)-1]
			delete(visited, next)
		}
	}

	dfs(s)

	return out
}

func pathIsSimple(nodes []model.Node) bool {
	seen := make(map[identity.Uid]struct{}, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n.Uid()]; ok {
			return false
		}
		seen[n.Uid()] = struct{}{}
	}
	return true
}
