package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// span is a run of text sharing one style
type span struct {
	text  string
	style tcell.Style
}

func spansWidth(spans []span) int {
	w := 0
	for _, s := range spans {
		w += runewidth.StringWidth(s.text)
	}
	return w
}

// drawSpans writes spans starting at x, clipping to the screen width
// Returns the column after the last written cell
func drawSpans(screen tcell.Screen, x, y int, spans []span) int {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return x
	}
	for _, s := range spans {
		for _, r := range s.text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x >= 0 && x+w <= width {
				screen.SetContent(x, y, r, nil, s.style)
			}
			x += w
		}
	}
	return x
}

// drawCentered writes spans horizontally centred on row y
func drawCentered(screen tcell.Screen, y int, spans []span) {
	width, _ := screen.Size()
	x := (width - spansWidth(spans)) / 2
	drawSpans(screen, x, y, spans)
}

// fillRow paints a whole row with blanks in style
func fillRow(screen tcell.Screen, y int, style tcell.Style) {
	width, _ := screen.Size()
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
