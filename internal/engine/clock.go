package engine

import "time"

// Clock reports the current instant. The Generator derives both the
// horizon and DTSTAMP from it.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock in the local time zone, so "today" is the
// user's calendar date.
var SystemClock Clock = ClockFunc(time.Now)
