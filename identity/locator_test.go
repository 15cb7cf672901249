package identity

import "testing"

func TestLocatorNext(t *testing.T) {
	u := NewUid()
	l := NewLocator(u, 1)

	l2 := l.Next()

	if l2.Uid != u {
		t.Error("Next() should preserve the uid")
		return
	}

	if l2.Version != 2 {
		t.Error("Unexpected version:", l2.Version)
		return
	}

	if l.Version != 1 {
		t.Error("Next() should not mutate the receiver")
		return
	}
}

func TestLocatorEqual(t *testing.T) {
	u1 := NewUid()
	u2 := NewUid()

	l1 := NewLocator(u1, 1)
	l2 := NewLocator(u1, 1)
	l3 := NewLocator(u1, 2)
	l4 := NewLocator(u2, 1)

	if !l1.Equal(l2) {
		t.Error("Locators with same uid/version should be equal")
		return
	}

	if l1.Equal(l3) {
		t.Error("Locators with different versions should not be equal")
		return
	}

	if l1.Equal(l4) {
		t.Error("Locators with different uids should not be equal")
		return
	}
}

func TestLocatorString(t *testing.T) {
	l := NewLocator(Uid("abc"), 3)

	if l.String() != "abc@3" {
		t.Error("Unexpected string representation:", l.String())
		return
	}
}

func TestLocatorZero(t *testing.T) {
	var l Locator

	if !l.IsZero() {
		t.Error("Zero value locator should report IsZero")
		return
	}
}
