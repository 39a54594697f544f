package engine

import (
	"math"
	"time"
)

// PlaybackClock tracks effective song time: real elapsed time minus pauses,
// shifted by the start position and the user's manual offset
// Owned by the playback loop; not safe for concurrent use
type PlaybackClock struct {
	provider TimeProvider

	startPosition time.Duration

	// Session state, reset by Start
	sessionStart    time.Time
	totalPausedTime time.Duration
	isPaused        bool
	pauseStartTime  time.Time
	offset          time.Duration
}

// NewPlaybackClock creates a clock and starts it at startPosition seconds
func NewPlaybackClock(provider TimeProvider, startPosition float64) *PlaybackClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	pc := &PlaybackClock{provider: provider}
	pc.Start(startPosition)
	return pc
}

// Start begins a fresh session; the start position is added to effective time
// without consuming real time
func (pc *PlaybackClock) Start(startPosition float64) {
	pc.startPosition = secondsToDuration(startPosition)
	pc.sessionStart = pc.provider.Now()
	pc.totalPausedTime = 0
	pc.isPaused = false
	pc.pauseStartTime = time.Time{}
	pc.offset = 0
}

// Restart discards offset and pause state and starts again from the start position
func (pc *PlaybackClock) Restart() {
	pc.Start(pc.startPosition.Seconds())
}

// Now returns effective elapsed seconds, frozen while paused and never negative
func (pc *PlaybackClock) Now() float64 {
	at := pc.provider.Now()
	if pc.isPaused {
		at = pc.pauseStartTime
	}

	elapsed := at.Sub(pc.sessionStart) - pc.totalPausedTime + pc.startPosition + pc.offset
	if elapsed < 0 {
		return 0
	}
	return elapsed.Seconds()
}

// TogglePause flips between paused and playing
func (pc *PlaybackClock) TogglePause() {
	now := pc.provider.Now()
	if pc.isPaused {
		pc.totalPausedTime += now.Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
		pc.isPaused = false
		return
	}
	pc.pauseStartTime = now
	pc.isPaused = true
}

// AdjustOffset shifts effective time by delta seconds, unbounded either way
func (pc *PlaybackClock) AdjustOffset(delta float64) {
	pc.offset += secondsToDuration(delta)
}

// IsPaused returns current pause state
func (pc *PlaybackClock) IsPaused() bool {
	return pc.isPaused
}

// Offset returns the manual offset in seconds
func (pc *PlaybackClock) Offset() float64 {
	return pc.offset.Seconds()
}

// StartPosition returns the configured start position in seconds
func (pc *PlaybackClock) StartPosition() float64 {
	return pc.startPosition.Seconds()
}

// GetTotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PlaybackClock) GetTotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// secondsToDuration rounds to the nearest nanosecond so repeated 0.1s steps sum exactly
func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
