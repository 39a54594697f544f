package engine

import "time"

// TimeProvider supplies instants for the playback clock
// Production uses monotonic readings; tests substitute MockTimeProvider
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns time.Now, which carries a monotonic clock reading
// so wall-clock adjustments never move playback
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
