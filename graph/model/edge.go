package model

import "github.com/krotik/chronograph/identity"

/*
Edge is an immutable directed arc version in the graph. Unlike the teacher's
edge (which holds a (key, kind) pair per endpoint), an Edge here holds the
exact Node version it was created against (spec invariant 3): the source and
target fields are strong references to specific, stored Node versions, not
just uids. Self-loops and parallel edges between the same endpoints are both
permitted (spec section 4.2).
*/
type Edge struct {
	Locator       identity.Locator
	Type          Type
	Source        Node
	Target        Node
	Data          Data
	ComponentRefs map[identity.Locator]struct{}
	Created       Instant
	Expired       OptInstant
}

/*
NewEdge constructs the first version (version 1) of a new edge between the
given source and target node versions.
*/
func NewEdge(uid identity.Uid, typ Type, source, target Node, data Data,
	componentRefs map[identity.Locator]struct{}, created Instant) Edge {

	return Edge{
		Locator:       identity.NewLocator(uid, 1),
		Type:          typ,
		Source:        source,
		Target:        target,
		Data:          data,
		ComponentRefs: copyLocatorSet(componentRefs),
		Created:       created,
	}
}

/*
Uid returns the stable identity of this edge across versions.
*/
func (e Edge) Uid() identity.Uid {
	return e.Locator.Uid
}

/*
IsActive returns true if this edge version has not expired.
*/
func (e Edge) IsActive() bool {
	return !e.Expired.Present
}

/*
IsSelfLoop returns true if source and target are the same logical node.
*/
func (e Edge) IsSelfLoop() bool {
	return e.Source.Uid() == e.Target.Uid()
}

/*
WithExpiry returns a copy of this edge with Expired set to t.
*/
func (e Edge) WithExpiry(t Instant) Edge {
	e.Expired = OptInstant{Present: true, At: t}
	return e
}

/*
Next returns a new active edge version for the same uid, one version ahead,
with the source and target the caller passes (node.update passes the new
node version on whichever endpoint referred to the old one, both for a
self-loop; edge.update passes the existing endpoints unchanged).
*/
func (e Edge) Next(typ Type, source, target Node, data Data,
	componentRefs map[identity.Locator]struct{}, created Instant) Edge {

	return Edge{
		Locator:       e.Locator.Next(),
		Type:          typ,
		Source:        source,
		Target:        target,
		Data:          data,
		ComponentRefs: copyLocatorSet(componentRefs),
		Created:       created,
	}
}

/*
ReferencesComponent returns true if this edge version references the given
component locator.
*/
func (e Edge) ReferencesComponent(loc identity.Locator) bool {
	_, ok := e.ComponentRefs[loc]
	return ok
}

/*
WithRewrittenComponentRef returns a copy of this edge whose ComponentRefs has
oldLoc removed and newLoc added, all other entries preserved (spec section
4.3, component.update step 4).
*/
func (e Edge) WithRewrittenComponentRef(oldLoc, newLoc identity.Locator) map[identity.Locator]struct{} {
	refs := copyLocatorSet(e.ComponentRefs)
	delete(refs, oldLoc)
	refs[newLoc] = struct{}{}
	return refs
}

/*
ExistedAt returns true if this edge version's temporal window contains t.
*/
func (e Edge) ExistedAt(t Instant) bool {
	return windowContains(e.Created, e.Expired, t)
}

/*
OtherEnd returns the node uid on the other side of the edge from the given
uid. Used by path operations when walking the multigraph as undirected.
*/
func (e Edge) OtherEnd(uid identity.Uid) identity.Uid {
	if e.Source.Uid() == uid {
		return e.Target.Uid()
	}

	return e.Source.Uid()
}

func copyLocatorSet(in map[identity.Locator]struct{}) map[identity.Locator]struct{} {
	out := make(map[identity.Locator]struct{}, len(in))

	for k := range in {
		out[k] = struct{}{}
	}

	return out
}
