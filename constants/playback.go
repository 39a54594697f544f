package constants

import "time"

// Playback Loop Timing Constants
const (
	// TickInterval is the default poll/render interval of the playback loop
	TickInterval = 50 * time.Millisecond

	// MinTickInterval and MaxTickInterval bound the --tick flag
	MinTickInterval = 10 * time.Millisecond
	MaxTickInterval = 250 * time.Millisecond

	// EventQueueSize is the buffer between the terminal and the playback loop
	EventQueueSize = 64
)

// Line Cue Sound Constants
const (
	CueSampleRate = 44100
	CueFrequency  = 880.0
	CueDuration   = 40 * time.Millisecond
	CueVolume     = -1.5 // beep effects.Volume exponent, base 2
)
