package identity

import "fmt"

/*
Locator identifies one specific version of an entity. Versions are dense
integers starting at 1 for any given Uid (spec.md invariant 1).
*/
type Locator struct {
	Uid     Uid
	Version int
}

/*
NewLocator creates a Locator for the given uid and version. Version must be
>= 1; callers constructing the first version of an entity should pass 1.
*/
func NewLocator(uid Uid, version int) Locator {
	return Locator{Uid: uid, Version: version}
}

/*
Next returns the Locator for the next version of the same uid.
*/
func (l Locator) Next() Locator {
	return Locator{Uid: l.Uid, Version: l.Version + 1}
}

/*
IsZero returns true if this Locator is the empty value.
*/
func (l Locator) IsZero() bool {
	return l.Uid.IsZero() && l.Version == 0
}

/*
String returns a human-readable representation of this locator.
*/
func (l Locator) String() string {
	return fmt.Sprintf("%s@%d", l.Uid, l.Version)
}

/*
Equal returns true if both locators address the same uid and version.
*/
func (l Locator) Equal(other Locator) bool {
	return l.Uid == other.Uid && l.Version == other.Version
}
