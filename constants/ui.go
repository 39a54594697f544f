package constants

import "github.com/gdamore/tcell/v2"

// Lyric Window Layout
const (
	// VisibleLines is the number of lyric rows shown around the anchor line
	VisibleLines = 5

	// CenterLine is the row of the window holding the anchor line
	CenterLine = 2

	// ProgressBarWidth is the number of cells in the song progress bar
	ProgressBarWidth = 30

	// FooterRows is the number of rows below the lyric window (time, title, controls)
	FooterRows = 3
)

// Markers and Glyphs
const (
	ActiveMarkerLeft  = ">     "
	ActiveMarkerRight = "     <"
	ProgressFill      = '━'
	ProgressKnob      = '●'
	ControlsPlaying   = "⇄  ◀  ‖  ▶  ⟲"
	ControlsPaused    = "‖ Paused - Press Space to Resume ‖"
	ControlsEnded     = "♫ Song Ended - Press R to Restart ♫"
)

// Colors
var (
	ColorBackground = tcell.NewRGBColor(20, 24, 40)
	ColorSung       = tcell.NewRGBColor(0, 255, 0)
	ColorUpcoming   = tcell.ColorWhite
	ColorMarker     = tcell.ColorRed
	ColorTitle      = tcell.ColorFuchsia
	ColorBarPlayed  = tcell.ColorWhite
	ColorBarPending = tcell.NewRGBColor(80, 80, 80)
	ColorOffset     = tcell.ColorYellow
)
