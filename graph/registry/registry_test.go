package registry

import (
	"testing"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

func TestRegistryLifecycle(t *testing.T) {
	r := New()

	uid := identity.NewUid()
	c1 := model.NewComponent(uid, "Group", model.NewData("", nil), 1)
	r.Put(c1)

	active, ok := r.Active(uid)
	if !ok || active.Locator.Version != 1 {
		t.Error("Expected version 1 to be active")
		return
	}

	c1Expired := c1.WithExpiry(5)
	c2 := c1.Next("Group", model.NewData("", nil), 5)

	// Simulate the post-update state in a fresh registry: the expired twin of
	// version 1 followed by version 2.
	r2 := New()
	r2.Put(c1Expired)
	r2.Put(c2)

	if _, ok := r2.Active(uid); !ok {
		t.Error("Expected a new active version after update")
		return
	}

	atBefore, ok := r2.At(uid, 3)
	if !ok || atBefore.Locator.Version != 1 {
		t.Error("Expected version 1 to be active at t=3")
		return
	}

	atAfter, ok := r2.At(uid, 5)
	if !ok || atAfter.Locator.Version != 2 {
		t.Error("Expected version 2 to be active at t=5 (half-open window)")
		return
	}

	byLoc, ok := r2.ByLocator(c1.Locator)
	if !ok || byLoc.Locator.Version != 1 {
		t.Error("ByLocator should resolve the exact version requested")
		return
	}

	versions := r2.Versions(uid)
	if len(versions) != 2 {
		t.Error("Expected two versions on file:", len(versions))
		return
	}
}

func TestRegistryAllActive(t *testing.T) {
	r := New()

	c1 := model.NewComponent(identity.NewUid(), "Group", model.NewData("", nil), 1)
	c2 := model.NewComponent(identity.NewUid(), "Group", model.NewData("", nil), 1)
	r.Put(c1)
	r.Put(c2)

	all := r.AllActive()
	if len(all) != 2 {
		t.Error("Expected two active components:", len(all))
		return
	}
}
