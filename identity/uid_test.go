package identity

import "testing"

func TestNewUidLength(t *testing.T) {
	u := NewUid()

	if len(u.String()) != uidLength {
		t.Error("Unexpected uid length:", len(u.String()))
		return
	}

	if u.IsZero() {
		t.Error("Freshly minted uid should not be zero")
		return
	}
}

func TestNewUidUnique(t *testing.T) {
	seen := make(map[Uid]bool)

	for i := 0; i < 1000; i++ {
		u := NewUid()

		if seen[u] {
			t.Error("Unexpected collision:", u)
			return
		}

		seen[u] = true
	}
}

func TestUidZero(t *testing.T) {
	var u Uid

	if !u.IsZero() {
		t.Error("Zero value uid should report IsZero")
		return
	}
}
