package repository

import (
	"testing"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

func TestMemoryNodesSaveAndFind(t *testing.T) {
	r := NewMemoryNodes()

	uid := identity.NewUid()
	n1 := model.NewNode(uid, "Person", model.NewData("", "alice"), 1)

	if err := r.Save(n1); err != nil {
		t.Fatal(err)
	}

	if err := r.Save(n1); err == nil {
		t.Error("Expected duplicate locator to be rejected")
	}

	active, ok := r.FindActive(uid)
	if !ok || active.Locator != n1.Locator {
		t.Error("Expected to find the saved version as active")
	}

	found, err := r.Find(n1.Locator)
	if err != nil || !found.Data.Equal(n1.Data) {
		t.Error("Expected round-trip via Find to return an equal record")
	}

	n1Expired := n1.WithExpiry(5)
	n2 := n1.Next("Person", model.NewData("", "alice2"), 5)
	if err := r.Save(n1Expired); err == nil {
		t.Error("Expected saving the same locator again (expired twin) to be rejected by Save")
	}

	if !r.Expire(uid, 5) {
		t.Fatal("Expected Expire to succeed on the active version")
	}
	if err := r.Save(n2); err != nil {
		t.Fatal(err)
	}

	if _, ok := r.FindActive(uid); !ok {
		t.Error("Expected a new active version after expire+save")
	}

	at4, ok := r.FindAt(uid, 4)
	if !ok || at4.Locator.Version != 1 {
		t.Error("Expected version 1 to be current at t=4")
	}

	at5, ok := r.FindAt(uid, 5)
	if !ok || at5.Locator.Version != 2 {
		t.Error("Expected version 2 to be current at t=5 (half-open window)")
	}

	if len(r.AllIds()) != 1 {
		t.Error("Expected exactly one uid on file")
	}

	if !r.Delete(uid) {
		t.Error("Expected Delete to succeed")
	}

	if len(r.FindVersions(uid)) != 0 {
		t.Error("Expected no versions after Delete")
	}
}

func TestMemoryComponentsAllActiveIds(t *testing.T) {
	r := NewMemoryComponents()

	c1 := model.NewComponent(identity.NewUid(), "Group", model.NewData("", nil), 1)
	c2 := model.NewComponent(identity.NewUid(), "Group", model.NewData("", nil), 1)

	if err := r.Save(c1); err != nil {
		t.Fatal(err)
	}
	if err := r.Save(c2); err != nil {
		t.Fatal(err)
	}

	r.Expire(c2.Uid(), 5)

	active := r.AllActiveIds()
	if len(active) != 1 || active[0] != c1.Uid() {
		t.Error("Expected only the un-expired component to be active")
	}
}
