package clock

import "time"

// StampLayout is the human-readable timestamp format used for the
// last-updated metadata cell and order completion stamps.
const StampLayout = "2006-01-02 15:04:05 MST"

// Clock allows injecting time into services.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// Stamp formats the clock's current time in the named timezone using StampLayout.
// An unknown timezone falls back to UTC rather than failing the operation.
func Stamp(c Clock, tzName string) string {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.UTC
	}
	return c.Now().In(loc).Format(StampLayout)
}
