package player

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lyric-term/constants"
	"github.com/lixenwraith/lyric-term/engine"
	"github.com/lixenwraith/lyric-term/input"
	"github.com/lixenwraith/lyric-term/render"
	"github.com/lixenwraith/lyric-term/timeline"
)

// ErrEventStreamClosed is returned when the terminal stops delivering events
var ErrEventStreamClosed = errors.New("terminal event stream closed")

// Cue is notified when a new lyric line becomes active
type Cue interface {
	PlayCue()
}

// Config tunes the playback loop; zero values select defaults
type Config struct {
	Tick     time.Duration
	Cue      Cue
	Provider engine.TimeProvider
	Keys     *input.KeyTable
}

// Player is the single-threaded driving loop: it owns the clock, applies key
// intents to it and renders one snapshot per tick
type Player struct {
	screen   tcell.Screen
	tl       *timeline.Timeline
	clock    *engine.PlaybackClock
	renderer *render.Renderer
	keys     *input.KeyTable
	cue      Cue
	tick     time.Duration

	lastLine int
	finished bool
}

// New creates a player and starts its clock at the timeline's start position
func New(screen tcell.Screen, tl *timeline.Timeline, cfg Config) *Player {
	if cfg.Tick <= 0 {
		cfg.Tick = constants.TickInterval
	}
	if cfg.Keys == nil {
		cfg.Keys = input.DefaultKeyTable()
	}

	return &Player{
		screen:   screen,
		tl:       tl,
		clock:    engine.NewPlaybackClock(cfg.Provider, tl.StartPosition()),
		renderer: render.NewRenderer(screen, tl),
		keys:     cfg.Keys,
		cue:      cfg.Cue,
		tick:     cfg.Tick,
		lastLine: engine.NoLine,
	}
}

// Clock exposes the playback clock
func (p *Player) Clock() *engine.PlaybackClock {
	return p.clock
}

// Run polls events and ticks until quit, context cancellation or a closed
// event stream
func (p *Player) Run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	log.Printf("Playing %q (%d lines, %.1fs, tick %v)", p.tl.Title(), p.tl.Len(), p.tl.Duration(), p.tick)
	p.Tick()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Playback cancelled: %v", ctx.Err())
			return nil

		case ev, ok := <-events:
			if !ok {
				return ErrEventStreamClosed
			}
			if !p.HandleEvent(ev) {
				return nil
			}
			// Redraw immediately so key feedback does not wait for the tick
			p.Tick()

		case <-ticker.C:
			p.Tick()
		}
	}
}

// HandleEvent applies one terminal event; returns false on quit
func (p *Player) HandleEvent(ev tcell.Event) bool {
	intent := p.keys.Translate(ev)

	switch intent {
	case input.IntentNone:
		return true
	case input.IntentQuit:
		log.Printf("Quit at %.2fs", p.clock.Now())
		return false
	case input.IntentTogglePause:
		if p.finished {
			// Only restart leaves the ended state
			return true
		}
		p.clock.TogglePause()
	case input.IntentRestart:
		p.clock.Restart()
		p.finished = false
		p.lastLine = engine.NoLine
	case input.IntentOffsetUp, input.IntentOffsetDown:
		p.clock.AdjustOffset(intent.OffsetDelta())
	case input.IntentResize:
		p.screen.Sync()
	}

	log.Printf("Intent %s: now=%.2fs offset=%+.1fs paused=%t", intent, p.clock.Now(), p.clock.Offset(), p.clock.IsPaused())
	return true
}

// Tick computes the current state, applies the end-of-song policy and renders
func (p *Player) Tick() engine.RenderState {
	rs := engine.Snapshot(p.clock, p.tl)

	// Auto-pause once on reaching the end
	if rs.Finished && !p.finished && !rs.Paused {
		p.clock.TogglePause()
		rs.Paused = true
		log.Printf("Song finished at %.2fs", rs.Elapsed)
	}
	p.finished = rs.Finished

	if rs.ActiveLine != engine.NoLine && rs.ActiveLine != p.lastLine && !rs.Paused && p.cue != nil {
		p.cue.PlayCue()
	}
	p.lastLine = rs.ActiveLine

	p.renderer.Draw(rs)
	return rs
}
