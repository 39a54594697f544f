package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // q, Q, Esc, Ctrl+C
	IntentTogglePause // Space
	IntentRestart     // r, R
	IntentOffsetUp    // Up arrow
	IntentOffsetDown  // Down arrow
	IntentResize      // Terminal resize event
)

// OffsetStep is the offset change in seconds for one Up/Down press
const OffsetStep = 0.1

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentTogglePause: "toggle-pause",
	IntentRestart:     "restart",
	IntentOffsetUp:    "offset-up",
	IntentOffsetDown:  "offset-down",
	IntentResize:      "resize",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// OffsetDelta returns the offset change carried by the intent
func (i IntentType) OffsetDelta() float64 {
	switch i {
	case IntentOffsetUp:
		return OffsetStep
	case IntentOffsetDown:
		return -OffsetStep
	default:
		return 0
	}
}
