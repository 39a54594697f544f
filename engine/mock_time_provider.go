package engine

import "time"

// MockTimeProvider provides a controllable time source for testing
// Not synchronized: the playback loop is single-threaded
type MockTimeProvider struct {
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}

// AdvanceSeconds advances by fractional seconds
func (m *MockTimeProvider) AdvanceSeconds(s float64) {
	m.Advance(secondsToDuration(s))
}
