package engine

import (
	"testing"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

func TestNodeUpdateCascadesIncidentEdges(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Person", model.NewData("", "alice"), 1)
	b, _ := m.AddNode("Person", model.NewData("", "bob"), 1)
	e, err := m.AddEdge("Knows", a.Uid(), b.Uid(), model.NewData("", nil), nil, 1)
	if err != nil {
		t.Fatal(err)
	}

	updated, err := m.UpdateNode(a.Uid(), "Person", model.NewData("", "alice2"), 5)
	if err != nil {
		t.Fatal(err)
	}

	if updated.Locator.Version != 2 {
		t.Error("Expected node version 2 after update")
	}

	// The original node version is now expired.
	oldNode, err := m.FindNode(a.Locator)
	if err != nil || oldNode.IsActive() {
		t.Error("Expected original node version to be expired")
	}

	// The edge should have been rewritten to a new version pointing at the
	// new node version, and the old edge version expired.
	oldEdge, err := m.FindEdge(e.Locator)
	if err != nil || oldEdge.IsActive() {
		t.Error("Expected original edge version to be expired")
	}

	active, ok := m.FindActiveEdge(e.Uid())
	if !ok {
		t.Fatal("Expected an active edge version to exist")
	}

	if active.Locator.Version != 2 {
		t.Error("Expected edge version 2 after cascade")
	}

	if active.Source.Locator != updated.Locator {
		t.Error("Expected rewritten edge to reference the new node version")
	}

	if active.Target.Locator != b.Locator {
		t.Error("Expected the untouched endpoint to still reference the original target version")
	}
}

func TestNodeExpireCascadesWithoutNewVersions(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Person", model.NewData("", "alice"), 1)
	b, _ := m.AddNode("Person", model.NewData("", "bob"), 1)
	e, _ := m.AddEdge("Knows", a.Uid(), b.Uid(), model.NewData("", nil), nil, 1)

	if _, err := m.ExpireNode(a.Uid(), 10); err != nil {
		t.Fatal(err)
	}

	if _, ok := m.FindActiveNode(a.Uid()); ok {
		t.Error("Expected node to have no active version after expire")
	}

	if _, ok := m.FindActiveEdge(e.Uid()); ok {
		t.Error("Expected incident edge to be expired as well")
	}

	versions := m.FindEdgeVersions(e.Uid())
	if len(versions) != 1 {
		t.Error("Expected no new edge version to be inserted on node expire, got", len(versions))
	}
}

func TestSelfLoopCascadesOnce(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Person", model.NewData("", "alice"), 1)
	e, err := m.AddEdge("RefersTo", a.Uid(), a.Uid(), model.NewData("", nil), nil, 1)
	if err != nil {
		t.Fatal(err)
	}

	if !e.IsSelfLoop() {
		t.Fatal("Expected a self-loop edge")
	}

	if _, err := m.UpdateNode(a.Uid(), "Person", model.NewData("", "alice2"), 5); err != nil {
		t.Fatal(err)
	}

	versions := m.FindEdgeVersions(e.Uid())
	if len(versions) != 2 {
		t.Fatalf("Expected the self-loop to be rewritten exactly once, got %d versions", len(versions))
	}

	active, ok := m.FindActiveEdge(e.Uid())
	if !ok {
		t.Fatal("Expected an active self-loop version")
	}

	if active.Source.Locator != active.Target.Locator {
		t.Error("Expected both ends of the rewritten self-loop to reference the new node version")
	}
}

func TestEdgeUpdateIsolatesEndpoints(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Person", model.NewData("", "alice"), 1)
	b, _ := m.AddNode("Person", model.NewData("", "bob"), 1)
	e, _ := m.AddEdge("Knows", a.Uid(), b.Uid(), model.NewData("", nil), nil, 1)

	updated, err := m.UpdateEdge(e.Uid(), "Knows", model.NewData("", "closer"), nil, 5)
	if err != nil {
		t.Fatal(err)
	}

	if updated.Source.Locator != a.Locator || updated.Target.Locator != b.Locator {
		t.Error("Expected edge update to preserve original endpoint versions")
	}
}

func TestComponentUpdateRewritesReferencingEdgesOnce(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Account", model.NewData("", nil), 1)
	b, _ := m.AddNode("Account", model.NewData("", nil), 1)

	c, err := m.AddComponent("Group", model.NewData("", "finance"), 1)
	if err != nil {
		t.Fatal(err)
	}

	e, err := m.AddEdge("Transfer", a.Uid(), b.Uid(), model.NewData("", nil), []identity.Locator{c.Locator}, 1)
	if err != nil {
		t.Fatal(err)
	}

	updatedComponent, err := m.UpdateComponent(c.Uid(), "Group", model.NewData("", "finance2"), 5)
	if err != nil {
		t.Fatal(err)
	}

	versions := m.FindEdgeVersions(e.Uid())
	if len(versions) != 2 {
		t.Fatalf("Expected the edge to be rewritten exactly once by the component cascade, got %d versions", len(versions))
	}

	if versions[0].IsActive() || versions[0].Expired.At != 5 {
		t.Error("Expected the old edge version to be expired at the component update instant")
	}

	active, ok := m.FindActiveEdge(e.Uid())
	if !ok {
		t.Fatal("Expected an active edge version")
	}

	if active.ReferencesComponent(c.Locator) {
		t.Error("Expected the old component reference to be removed")
	}

	if !active.ReferencesComponent(updatedComponent.Locator) {
		t.Error("Expected the new component reference to be present")
	}
}

func TestComponentExpireDoesNotTouchEdges(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Account", model.NewData("", nil), 1)
	b, _ := m.AddNode("Account", model.NewData("", nil), 1)
	c, _ := m.AddComponent("Group", model.NewData("", "finance"), 1)
	e, _ := m.AddEdge("Transfer", a.Uid(), b.Uid(), model.NewData("", nil), []identity.Locator{c.Locator}, 1)

	if _, err := m.ExpireComponent(c.Uid(), 5); err != nil {
		t.Fatal(err)
	}

	versions := m.FindEdgeVersions(e.Uid())
	if len(versions) != 1 {
		t.Error("Expected component expire to leave referencing edges untouched")
	}
}

func TestAddEdgeRequiresActiveEndpoints(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Person", model.NewData("", nil), 1)

	if _, err := m.AddEdge("Knows", a.Uid(), identity.NewUid(), model.NewData("", nil), nil, 1); err == nil {
		t.Error("Expected an error when the target does not exist")
	}

	if _, err := m.ExpireNode(a.Uid(), 2); err != nil {
		t.Fatal(err)
	}

	if _, err := m.AddEdge("Knows", a.Uid(), a.Uid(), model.NewData("", nil), nil, 3); err == nil {
		t.Error("Expected an error when the source is no longer active")
	}
}

func TestValidateComponentSubgraph(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Account", model.NewData("", nil), 1)
	b, _ := m.AddNode("Account", model.NewData("", nil), 1)
	cc, _ := m.AddNode("Account", model.NewData("", nil), 1)
	d, _ := m.AddNode("Account", model.NewData("", nil), 1)

	ab, _ := m.AddEdge("Transfer", a.Uid(), b.Uid(), model.NewData("", nil), nil, 1)
	cd, _ := m.AddEdge("Transfer", cc.Uid(), d.Uid(), model.NewData("", nil), nil, 1)

	err := m.ValidateComponentSubgraph(
		[]identity.Locator{a.Locator, b.Locator, cc.Locator, d.Locator},
		[]identity.Locator{ab.Locator, cd.Locator},
	)
	if err == nil {
		t.Error("Expected disconnected subgraph {A-B, C-D} to fail validation")
	}

	err = m.ValidateComponentSubgraph(
		[]identity.Locator{a.Locator, b.Locator},
		[]identity.Locator{ab.Locator},
	)
	if err != nil {
		t.Error("Expected a simple connected, acyclic subgraph to validate, got", err)
	}
}

func TestValidateComponentSubgraphRejectsCycle(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Account", model.NewData("", nil), 1)
	b, _ := m.AddNode("Account", model.NewData("", nil), 1)

	ab, _ := m.AddEdge("Transfer", a.Uid(), b.Uid(), model.NewData("", nil), nil, 1)
	ba, _ := m.AddEdge("Transfer", b.Uid(), a.Uid(), model.NewData("", nil), nil, 1)

	err := m.ValidateComponentSubgraph(
		[]identity.Locator{a.Locator, b.Locator},
		[]identity.Locator{ab.Locator, ba.Locator},
	)
	if err == nil {
		t.Error("Expected a two-cycle to fail acyclicity validation")
	}
}

func TestFindNodeAtBoundary(t *testing.T) {
	m := New(nil)

	a, _ := m.AddNode("Person", model.NewData("", "v1"), 1)
	if _, err := m.UpdateNode(a.Uid(), "Person", model.NewData("", "v2"), 5); err != nil {
		t.Fatal(err)
	}

	before, ok := m.FindNodeAt(a.Uid(), 4)
	if !ok || before.Locator.Version != 1 {
		t.Error("Expected version 1 to be current just before the update instant")
	}

	at, ok := m.FindNodeAt(a.Uid(), 5)
	if !ok || at.Locator.Version != 2 {
		t.Error("Expected version 2 to be current exactly at the update instant (half-open window)")
	}
}
