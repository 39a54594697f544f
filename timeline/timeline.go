package timeline

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Construction failures, wrapped by ConfigError
var (
	ErrNoTitle             = errors.New("title is empty")
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrStartPosition       = errors.New("start position outside song")
	ErrNegativeStart       = errors.New("line starts before zero")
	ErrEmptyWindow         = errors.New("line end must be after start")
	ErrPastDuration        = errors.New("line ends after song duration")
	ErrUnsorted            = errors.New("lines not sorted by start time")
	ErrOverlap             = errors.New("line overlaps previous line")
)

// ConfigError reports an invalid timeline; Line is -1 for song-level problems
type ConfigError struct {
	Line int
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("invalid timeline: %v", e.Err)
	}
	return fmt.Sprintf("invalid timeline: line %d: %v", e.Line, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LyricLine is one timed lyric; times are seconds from song start
type LyricLine struct {
	Text  string
	Start float64
	End   float64
}

// Runes returns the character count used for reveal progress
func (l LyricLine) Runes() int {
	return utf8.RuneCountInString(l.Text)
}

// Timeline is an immutable, validated song
type Timeline struct {
	title         string
	duration      float64
	startPosition float64
	lines         []LyricLine
}

// New validates and builds a timeline. Lines must already be ordered; they are
// never re-sorted
func New(title string, duration, startPosition float64, lines []LyricLine) (*Timeline, error) {
	if title == "" {
		return nil, &ConfigError{Line: -1, Err: ErrNoTitle}
	}
	if !(duration > 0) {
		return nil, &ConfigError{Line: -1, Err: ErrNonPositiveDuration}
	}
	if startPosition < 0 || startPosition >= duration {
		return nil, &ConfigError{Line: -1, Err: ErrStartPosition}
	}

	for i, l := range lines {
		switch {
		case l.Start < 0:
			return nil, &ConfigError{Line: i, Err: ErrNegativeStart}
		case !(l.End > l.Start):
			return nil, &ConfigError{Line: i, Err: ErrEmptyWindow}
		case l.End > duration:
			return nil, &ConfigError{Line: i, Err: ErrPastDuration}
		}
		if i == 0 {
			continue
		}
		prev := lines[i-1]
		if l.Start < prev.Start {
			return nil, &ConfigError{Line: i, Err: ErrUnsorted}
		}
		if l.Start < prev.End {
			return nil, &ConfigError{Line: i, Err: ErrOverlap}
		}
	}

	owned := make([]LyricLine, len(lines))
	copy(owned, lines)

	return &Timeline{
		title:         title,
		duration:      duration,
		startPosition: startPosition,
		lines:         owned,
	}, nil
}

func (t *Timeline) Title() string { return t.title }

// Duration is the total song length in seconds
func (t *Timeline) Duration() float64 { return t.duration }

// StartPosition is the effective time at which playback begins
func (t *Timeline) StartPosition() float64 { return t.startPosition }

// Len returns the number of lyric lines
func (t *Timeline) Len() int { return len(t.lines) }

// Line returns line i; panics when out of range like a slice index
func (t *Timeline) Line(i int) LyricLine { return t.lines[i] }
