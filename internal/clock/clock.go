package clock

import "time"

// Clock abstracts time.Now so state-transition timestamps are testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func NewSystem() Clock {
	return systemClock{}
}
