package model

import "github.com/krotik/chronograph/identity"

/*
ElementKind tags which variant an Element holds.
*/
type ElementKind int

const (
	// ElementNode marks an Element wrapping a Node.
	ElementNode ElementKind = iota

	// ElementEdge marks an Element wrapping an Edge.
	ElementEdge
)

/*
Element is the sum type `Node | Edge` called for by spec section 9
("Polymorphism over node/edge"). It is used by component validation (which
needs to reason about a mixed set of nodes and edges) and by Path results.
Component is deliberately NOT an Element: the core model does not give
components an inheritance relationship with nodes/edges, since components
are pure metadata, not graph elements (spec section 4.3 preamble).
*/
type Element struct {
	Kind ElementKind
	Node Node
	Edge Edge
}

/*
NodeElement wraps a Node as an Element.
*/
func NodeElement(n Node) Element {
	return Element{Kind: ElementNode, Node: n}
}

/*
EdgeElement wraps an Edge as an Element.
*/
func EdgeElement(e Edge) Element {
	return Element{Kind: ElementEdge, Edge: e}
}

/*
IsNode returns true if this Element wraps a Node.
*/
func (e Element) IsNode() bool {
	return e.Kind == ElementNode
}

/*
IsEdge returns true if this Element wraps an Edge.
*/
func (e Element) IsEdge() bool {
	return e.Kind == ElementEdge
}

/*
Locator returns the locator of the wrapped Node or Edge.
*/
func (e Element) Locator() identity.Locator {
	if e.IsNode() {
		return e.Node.Locator
	}

	return e.Edge.Locator
}
