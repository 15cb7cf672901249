package model

import "fmt"

/*
Instant is a caller-supplied logical timestamp. The core never reads the
wall clock itself (spec section 5): every mutation takes its timestamp as an
explicit argument. Instant wraps an int64 so callers can use whatever clock
(wall time in nanoseconds, a logical counter, ...) fits their application.
*/
type Instant int64

/*
Before returns true if this instant comes strictly before other.
*/
func (i Instant) Before(other Instant) bool {
	return i < other
}

/*
After returns true if this instant comes strictly after other.
*/
func (i Instant) After(other Instant) bool {
	return i > other
}

/*
String returns a human-readable representation of this instant.
*/
func (i Instant) String() string {
	return fmt.Sprintf("t%d", int64(i))
}

/*
OptInstant is an optional Instant, used for the Expired field of a versioned
record. Present is false for an active (un-expired) version.
*/
type OptInstant struct {
	Present bool
	At      Instant
}

/*
String returns a human-readable representation, "none" when absent.
*/
func (o OptInstant) String() string {
	if !o.Present {
		return "none"
	}

	return o.At.String()
}

/*
windowContains reports whether t falls within the half-open temporal window
[created, expired), treating an absent expiry as +infinity. This is the one
shared boundary rule referenced by spec section 9's resolution of the
find_at ambiguity: at t == expired, the window does NOT contain t - the
subsequent version does.
*/
func windowContains(created Instant, expired OptInstant, t Instant) bool {
	if t.Before(created) {
		return false
	}

	if !expired.Present {
		return true
	}

	return t.Before(expired.At)
}
