package model

import (
	"testing"

	"github.com/krotik/chronograph/identity"
)

func TestTypeValid(t *testing.T) {
	if !Type("Person").Valid() {
		t.Error("Expected Person to be a valid type")
		return
	}

	if Type("").Valid() {
		t.Error("Expected empty type to be invalid")
		return
	}

	if Type("not valid!").Valid() {
		t.Error("Expected type with punctuation to be invalid")
		return
	}
}

func TestNodeLifecycle(t *testing.T) {
	uid := identity.NewUid()
	n1 := NewNode(uid, "Person", NewData("", "alice"), 10)

	if !n1.IsActive() {
		t.Error("Freshly created node should be active")
		return
	}

	if n1.ExistedAt(9) {
		t.Error("Node should not exist before its creation instant")
		return
	}

	if !n1.ExistedAt(10) {
		t.Error("Node should exist at its creation instant")
		return
	}

	expired := n1.WithExpiry(20)

	if n1.IsActive() != true {
		t.Error("WithExpiry must not mutate the receiver")
		return
	}

	if expired.IsActive() {
		t.Error("Expired copy should report inactive")
		return
	}

	if expired.ExistedAt(20) {
		t.Error("Window must be half-open: t == expired should not match")
		return
	}

	if !expired.ExistedAt(19) {
		t.Error("Window should still contain the instant just before expiry")
		return
	}

	n2 := n1.Next("Person", NewData("", "alice2"), 20)

	if n2.Locator.Version != 2 {
		t.Error("Unexpected next version:", n2.Locator.Version)
		return
	}

	if n2.Uid() != n1.Uid() {
		t.Error("Next version must preserve uid")
		return
	}
}

func TestEdgeSelfLoop(t *testing.T) {
	uid := identity.NewUid()
	n := NewNode(uid, "Person", NewData("", nil), 1)

	e := NewEdge(identity.NewUid(), "knows", n, n, NewData("", nil), nil, 2)

	if !e.IsSelfLoop() {
		t.Error("Edge with equal endpoints should be a self-loop")
		return
	}
}

func TestEdgeComponentRefRewrite(t *testing.T) {
	a := NewNode(identity.NewUid(), "Person", NewData("", nil), 1)
	b := NewNode(identity.NewUid(), "Person", NewData("", nil), 1)

	cLoc := identity.NewLocator(identity.NewUid(), 1)
	refs := map[identity.Locator]struct{}{cLoc: {}}

	e := NewEdge(identity.NewUid(), "knows", a, b, NewData("", nil), refs, 2)

	if !e.ReferencesComponent(cLoc) {
		t.Error("Edge should reference the component locator it was built with")
		return
	}

	newLoc := cLoc.Next()
	rewritten := e.WithRewrittenComponentRef(cLoc, newLoc)

	if _, ok := rewritten[cLoc]; ok {
		t.Error("Old locator should have been removed")
		return
	}

	if _, ok := rewritten[newLoc]; !ok {
		t.Error("New locator should have been added")
		return
	}

	if _, ok := e.ComponentRefs[cLoc]; !ok {
		t.Error("Original edge's ComponentRefs must not be mutated")
		return
	}
}

func TestPathElements(t *testing.T) {
	a := NewNode(identity.NewUid(), "Person", NewData("", nil), 1)
	b := NewNode(identity.NewUid(), "Person", NewData("", nil), 1)
	e := NewEdge(identity.NewUid(), "knows", a, b, NewData("", nil), nil, 2)

	p := NewPath([]Node{a, b}, []Edge{e})

	if p.Length() != 1 {
		t.Error("Unexpected path length:", p.Length())
		return
	}

	elems := p.Elements()

	if len(elems) != 3 {
		t.Error("Unexpected element count:", len(elems))
		return
	}

	if !elems[0].IsNode() || !elems[1].IsEdge() || !elems[2].IsNode() {
		t.Error("Unexpected element sequence")
		return
	}
}

func TestRefEquality(t *testing.T) {
	loc := identity.NewLocator(identity.NewUid(), 1)

	r1 := Loaded(loc, 42)
	r2 := Unloaded[int](loc, func(identity.Locator) (int, error) { return 42, nil })

	if !r1.Equal(r2) {
		t.Error("Refs to the same locator should be equal regardless of load state")
		return
	}

	if !r1.IsLoaded() || r2.IsLoaded() {
		t.Error("Unexpected load state")
		return
	}

	v, err := r2.Resolve()
	if err != nil || v != 42 {
		t.Error("Unexpected resolve result:", v, err)
		return
	}
}
