// Package timex holds the clock abstraction and the fixed timestamp format
// stored in account records.
package timex

import "time"

// Layout is the creation-time format: YYYY-MM-DD HH:MM:SS, zero padded.
const Layout = "2006-01-02 15:04:05"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Format renders t in Layout without any timezone conversion.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Stamp returns the current time of c formatted with Layout.
func Stamp(c Clock) string {
	return Format(c.Now())
}
