package engine

import (
	"math"
	"sort"

	"github.com/lixenwraith/lyric-term/timeline"
)

// NoLine marks the absence of an active or anchor line
const NoLine = -1

// RenderState is the per-tick snapshot handed to the renderer
type RenderState struct {
	ActiveLine      int     // Index of the line being sung, NoLine during silence or after the end
	Anchor          int     // Line the lyric window centres on, NoLine for an empty timeline
	RevealedChars   int     // Characters of the active line already sung
	LineProgress    float64 // [0,1] position within the active line window
	OverallProgress float64 // [0,1] position within the song
	Elapsed         float64 // Effective elapsed seconds
	Finished        bool

	// Copied from the clock by Snapshot; Compute leaves them zero
	Paused bool
	Offset float64
}

// LineStatus classifies a line relative to the current time
type LineStatus uint8

const (
	LineUpcoming LineStatus = iota
	LineActive
	LineSung
)

// Compute maps effective elapsed time onto the timeline
// Pure: identical inputs yield identical states
func Compute(elapsed float64, tl *timeline.Timeline) RenderState {
	rs := RenderState{
		ActiveLine:      NoLine,
		Anchor:          NoLine,
		Elapsed:         elapsed,
		OverallProgress: clamp01(elapsed / tl.Duration()),
	}

	n := tl.Len()

	if elapsed >= tl.Duration() {
		rs.Finished = true
		rs.OverallProgress = 1.0
		if n > 0 {
			rs.Anchor = n - 1
		}
		return rs
	}

	// First line not yet over; half-open windows mean End == elapsed is over
	idx := sort.Search(n, func(i int) bool {
		return tl.Line(i).End > elapsed
	})

	switch {
	case idx < n && tl.Line(idx).Start <= elapsed:
		line := tl.Line(idx)
		rs.ActiveLine = idx
		rs.Anchor = idx
		rs.LineProgress = clamp01((elapsed - line.Start) / (line.End - line.Start))
		runes := line.Runes()
		rs.RevealedChars = min(max(int(math.Floor(rs.LineProgress*float64(runes))), 0), runes)
	case idx > 0:
		// Silence after a finished line
		rs.Anchor = idx - 1
	case n > 0:
		// Before the first line
		rs.Anchor = 0
	}

	return rs
}

// Snapshot computes the state for the clock's current time and attaches the
// clock's pause flag and offset
func Snapshot(pc *PlaybackClock, tl *timeline.Timeline) RenderState {
	rs := Compute(pc.Now(), tl)
	rs.Paused = pc.IsPaused()
	rs.Offset = pc.Offset()
	return rs
}

// StatusAt reports whether line i is upcoming, active or sung at elapsed
func StatusAt(tl *timeline.Timeline, i int, elapsed float64) LineStatus {
	line := tl.Line(i)
	switch {
	case elapsed >= line.End:
		return LineSung
	case elapsed >= line.Start && elapsed < tl.Duration():
		return LineActive
	default:
		return LineUpcoming
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
