package repository

import (
	"testing"

	"github.com/krotik/chronograph/graph/engine"
	"github.com/krotik/chronograph/graph/model"
)

func TestSessionCommitAppliesQueuedEvents(t *testing.T) {
	nodeRepo := NewMemoryNodes()
	edgeRepo := NewMemoryEdges()

	listener := NewQueuedListener(nodeRepo, edgeRepo)
	session := NewSession(listener)
	defer session.Close()

	m := engine.New(listener)

	a, err := m.AddNode("Person", model.NewData("", "alice"), 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.AddNode("Person", model.NewData("", "bob"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddEdge("Knows", a.Uid(), b.Uid(), model.NewData("", nil), nil, 1); err != nil {
		t.Fatal(err)
	}

	if _, ok := nodeRepo.FindActive(a.Uid()); ok {
		t.Error("Expected the repository to see nothing before Commit")
	}

	if err := session.Commit(); err != nil {
		t.Fatal(err)
	}

	if _, ok := nodeRepo.FindActive(a.Uid()); !ok {
		t.Error("Expected the repository to reflect the node after Commit")
	}
	if len(edgeRepo.AllIds()) != 1 {
		t.Error("Expected the repository to reflect the edge after Commit")
	}
}

func TestSessionRollbackDiscardsQueuedEvents(t *testing.T) {
	nodeRepo := NewMemoryNodes()
	edgeRepo := NewMemoryEdges()

	listener := NewQueuedListener(nodeRepo, edgeRepo)
	session := NewSession(listener)
	defer session.Close()

	m := engine.New(listener)

	a, err := m.AddNode("Person", model.NewData("", "alice"), 1)
	if err != nil {
		t.Fatal(err)
	}

	session.Rollback()

	if err := session.Commit(); err != nil {
		t.Fatal(err)
	}

	if _, ok := nodeRepo.FindActive(a.Uid()); ok {
		t.Error("Expected a rolled-back session to never apply its queued events")
	}
}
