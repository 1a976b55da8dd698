package review

import "time"

// Clock supplies the current time. It is injected rather than read
// globally so due-card filtering and scheduling are deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, reading the system time in UTC.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
