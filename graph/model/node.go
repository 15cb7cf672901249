package model

import "github.com/krotik/chronograph/identity"

/*
Node is an immutable vertex version in the graph. A logical node (identified
by its Uid) has many Node versions over time; at most one has Expired unset
(spec invariant 1).
*/
type Node struct {
	Locator identity.Locator
	Type    Type
	Data    Data
	Created Instant
	Expired OptInstant
}

/*
NewNode constructs the first version (version 1) of a new node.
*/
func NewNode(uid identity.Uid, typ Type, data Data, created Instant) Node {
	return Node{
		Locator: identity.NewLocator(uid, 1),
		Type:    typ,
		Data:    data,
		Created: created,
	}
}

/*
Uid returns the stable identity of this node across versions.
*/
func (n Node) Uid() identity.Uid {
	return n.Locator.Uid
}

/*
IsActive returns true if this node version has not expired.
*/
func (n Node) IsActive() bool {
	return !n.Expired.Present
}

/*
WithExpiry returns a copy of this node with Expired set to t. The receiver is
left untouched (spec invariant 6: records are never modified in place).
*/
func (n Node) WithExpiry(t Instant) Node {
	n.Expired = OptInstant{Present: true, At: t}
	return n
}

/*
Next returns a new active node version for the same uid, one version ahead,
carrying the given type, data and creation instant.
*/
func (n Node) Next(typ Type, data Data, created Instant) Node {
	return Node{
		Locator: n.Locator.Next(),
		Type:    typ,
		Data:    data,
		Created: created,
	}
}

/*
ExistedAt returns true if this node version's temporal window contains t,
using the half-open interval [Created, Expired).
*/
func (n Node) ExistedAt(t Instant) bool {
	return windowContains(n.Created, n.Expired, t)
}
