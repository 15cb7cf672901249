package temporal

import (
	"testing"

	"github.com/krotik/chronograph/graph/engine"
	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

func TestEdgesAndNodesAsOf(t *testing.T) {
	m := engine.New(nil)

	a, _ := m.AddNode("Account", model.NewData("", nil), 1)
	b, _ := m.AddNode("Account", model.NewData("", nil), 1)
	c, _ := m.AddComponent("Group", model.NewData("", "finance"), 1)

	e, err := m.AddEdge("Transfer", a.Uid(), b.Uid(), model.NewData("", nil), []identity.Locator{c.Locator}, 1)
	if err != nil {
		t.Fatal(err)
	}

	v := New(m.Store(), m.Registry())

	edges := v.EdgesAsOf(c.Locator, 2)
	if len(edges) != 1 || edges[0].Locator != e.Locator {
		t.Fatal("Expected exactly the one referencing edge at t=2")
	}

	nodes := v.NodesAsOf(c.Locator, 2)
	if len(nodes) != 2 {
		t.Fatalf("Expected both endpoints, got %d", len(nodes))
	}

	if _, err := m.UpdateComponent(c.Uid(), "Group", model.NewData("", "finance2"), 5); err != nil {
		t.Fatal(err)
	}

	// After the component update cascade, the component locator c.Locator is
	// now historical: it no longer labels the active edge version, but it
	// still labels the edge version that was active in [1,5).
	stillAsOf := v.EdgesAsOf(c.Locator, 3)
	if len(stillAsOf) != 1 {
		t.Error("Expected the old component locator to still resolve edges_as_of before the rewrite instant")
	}

	afterRewrite := v.EdgesAsOf(c.Locator, 5)
	if len(afterRewrite) != 0 {
		t.Error("Expected the old component locator to resolve no edges at or after the rewrite instant")
	}
}

func TestComponentsForNodeAndEdge(t *testing.T) {
	m := engine.New(nil)

	a, _ := m.AddNode("Account", model.NewData("", nil), 1)
	b, _ := m.AddNode("Account", model.NewData("", nil), 1)
	c, _ := m.AddComponent("Group", model.NewData("", "finance"), 1)
	e, _ := m.AddEdge("Transfer", a.Uid(), b.Uid(), model.NewData("", nil), []identity.Locator{c.Locator}, 1)

	v := New(m.Store(), m.Registry())

	comps := v.ComponentsForEdge(e.Uid(), 2)
	if len(comps) != 1 || comps[0].Locator != c.Locator {
		t.Fatal("Expected the edge to resolve to the one referenced component")
	}

	nodeComps := v.ComponentsForNode(a.Uid(), 2)
	if len(nodeComps) != 1 || nodeComps[0].Locator != c.Locator {
		t.Fatal("Expected the node's incident edge to pull in the same component")
	}
}
