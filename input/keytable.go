package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyUp:     IntentOffsetUp,
			tcell.KeyDown:   IntentOffsetDown,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
			' ': IntentTogglePause,
			'r': IntentRestart,
			'R': IntentRestart,
		},
	}
}

// Translate converts a terminal event into an intent
func (kt *KeyTable) Translate(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return kt.Runes[ev.Rune()]
		}
		return kt.SpecialKeys[ev.Key()]
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
