// File: utils/clock.go
package utils

import "time"

// Clock supplies "now" for past-time checks and slot filtering. Injecting
// it lets tests pin the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// NewClock returns a Clock backed by the system time in UTC.
func NewClock() Clock {
	return realClock{}
}
