// Package clock lets stores stamp records with a time source tests can pin.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Real reads the system clock in UTC.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

func New() Clock {
	return Real{}
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
