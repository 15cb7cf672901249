package model

import "github.com/krotik/chronograph/identity"

/*
Component is a pure metadata entity tagging a subset of edges. A Component
never enumerates its own elements; membership is always computed at query
time from the edges whose ComponentRefs mention its locator (spec section
9's resolution of the "cyclic element<->component references" problem).
*/
type Component struct {
	Locator identity.Locator
	Type    Type
	Data    Data
	Created Instant
	Expired OptInstant
}

/*
NewComponent constructs the first version (version 1) of a new component.
*/
func NewComponent(uid identity.Uid, typ Type, data Data, created Instant) Component {
	return Component{
		Locator: identity.NewLocator(uid, 1),
		Type:    typ,
		Data:    data,
		Created: created,
	}
}

/*
Uid returns the stable identity of this component across versions.
*/
func (c Component) Uid() identity.Uid {
	return c.Locator.Uid
}

/*
IsActive returns true if this component version has not expired.
*/
func (c Component) IsActive() bool {
	return !c.Expired.Present
}

/*
WithExpiry returns a copy of this component with Expired set to t.
*/
func (c Component) WithExpiry(t Instant) Component {
	c.Expired = OptInstant{Present: true, At: t}
	return c
}

/*
Next returns a new active component version for the same uid, one version
ahead.
*/
func (c Component) Next(typ Type, data Data, created Instant) Component {
	return Component{
		Locator: c.Locator.Next(),
		Type:    typ,
		Data:    data,
		Created: created,
	}
}

/*
ExistedAt returns true if this component version's temporal window contains t.
*/
func (c Component) ExistedAt(t Instant) bool {
	return windowContains(c.Created, c.Expired, t)
}
