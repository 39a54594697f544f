package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lyric-term/constants"
	"github.com/lixenwraith/lyric-term/engine"
	"github.com/lixenwraith/lyric-term/timeline"
)

// Renderer paints render states for one timeline; it never touches the clock
type Renderer struct {
	screen tcell.Screen
	tl     *timeline.Timeline

	background tcell.Style
}

// NewRenderer creates a renderer bound to a screen and timeline
func NewRenderer(screen tcell.Screen, tl *timeline.Timeline) *Renderer {
	return &Renderer{
		screen:     screen,
		tl:         tl,
		background: tcell.StyleDefault.Background(constants.ColorBackground),
	}
}

// Draw renders one frame
func (r *Renderer) Draw(rs engine.RenderState) {
	r.screen.Clear()

	_, height := r.screen.Size()
	lyricsHeight := max(height-constants.FooterRows, 0)

	r.drawLyrics(rs, lyricsHeight)
	r.drawTimeBar(rs, lyricsHeight)
	r.drawTitle(lyricsHeight + 1)
	r.drawControls(rs, lyricsHeight+2)

	r.screen.Show()
}

// drawLyrics shows a window of lines centred on the anchor line
func (r *Renderer) drawLyrics(rs engine.RenderState, lyricsHeight int) {
	for y := 0; y < lyricsHeight; y++ {
		fillRow(r.screen, y, r.background)
	}
	if rs.Anchor == engine.NoLine {
		return
	}

	top := max((lyricsHeight-constants.VisibleLines)/2, 0)
	for row := 0; row < constants.VisibleLines; row++ {
		y := top + row
		if y >= lyricsHeight {
			break
		}
		idx := rs.Anchor + row - constants.CenterLine
		if idx < 0 || idx >= r.tl.Len() {
			continue
		}

		if idx == rs.ActiveLine {
			drawCentered(r.screen, y, r.activeLineSpans(rs))
			continue
		}

		line := r.tl.Line(idx)
		style := r.background.Foreground(constants.ColorUpcoming)
		if engine.StatusAt(r.tl, idx, rs.Elapsed) == engine.LineSung {
			style = r.background.Foreground(constants.ColorSung)
		}
		drawCentered(r.screen, y, []span{{line.Text, style}})
	}
}

// activeLineSpans splits the active line at the reveal point between markers
func (r *Renderer) activeLineSpans(rs engine.RenderState) []span {
	runes := []rune(r.tl.Line(rs.ActiveLine).Text)
	split := min(max(rs.RevealedChars, 0), len(runes))

	marker := r.background.Foreground(constants.ColorMarker).Bold(true)
	spans := []span{{constants.ActiveMarkerLeft, marker}}
	if split > 0 {
		spans = append(spans, span{string(runes[:split]), r.background.Foreground(constants.ColorSung).Bold(true)})
	}
	if split < len(runes) {
		spans = append(spans, span{string(runes[split:]), r.background.Foreground(constants.ColorUpcoming).Bold(true)})
	}
	return append(spans, span{constants.ActiveMarkerRight, marker})
}

// drawTimeBar renders "m:ss  ━━━●━━━  m:ss" plus the offset when set
func (r *Renderer) drawTimeBar(rs engine.RenderState, y int) {
	text := tcell.StyleDefault.Foreground(constants.ColorUpcoming)

	elapsed := min(rs.Elapsed, r.tl.Duration())
	spans := []span{{FormatTime(elapsed) + "  ", text}}
	spans = append(spans, progressBar(rs.OverallProgress, constants.ProgressBarWidth)...)
	spans = append(spans, span{"  " + FormatTime(r.tl.Duration()), text})
	if rs.Offset != 0 {
		spans = append(spans, span{fmt.Sprintf("  %+.1fs", rs.Offset), tcell.StyleDefault.Foreground(constants.ColorOffset)})
	}
	drawCentered(r.screen, y, spans)
}

func (r *Renderer) drawTitle(y int) {
	style := tcell.StyleDefault.Foreground(constants.ColorTitle).Bold(true)
	drawCentered(r.screen, y, []span{{r.tl.Title(), style}})
}

func (r *Renderer) drawControls(rs engine.RenderState, y int) {
	controls := constants.ControlsPlaying
	switch {
	case rs.Finished:
		controls = constants.ControlsEnded
	case rs.Paused:
		controls = constants.ControlsPaused
	}
	drawCentered(r.screen, y, []span{{controls, tcell.StyleDefault.Foreground(constants.ColorUpcoming)}})
}

// progressBar builds a bar of width cells with a knob at the current position
func progressBar(progress float64, width int) []span {
	if width <= 0 {
		return nil
	}
	knob := min(max(int(progress*float64(width)), 0), width-1)

	played := tcell.StyleDefault.Foreground(constants.ColorBarPlayed)
	pending := tcell.StyleDefault.Foreground(constants.ColorBarPending)

	return []span{
		{strings.Repeat(string(constants.ProgressFill), knob), played},
		{string(constants.ProgressKnob), played.Bold(true)},
		{strings.Repeat(string(constants.ProgressFill), width-knob-1), pending},
	}
}

// FormatTime renders seconds as m:ss
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int(seconds)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
