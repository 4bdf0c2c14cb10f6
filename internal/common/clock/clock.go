package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/mixology/internal/common/clock Clock

// Clock supplies wall-clock time so saturation and drink timestamps can be pinned in tests
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
