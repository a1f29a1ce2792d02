// Package input translates terminal events into game intents.
package input

// IntentType classifies what a key press asks the game to do
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentChar
	IntentBackspace
	IntentSubmit
	IntentQuit
	IntentToggleMode
	IntentPause
	IntentToggleMute
	IntentResize
)

// Intent is one discrete input signal; Char is set for IntentChar
type Intent struct {
	Type IntentType
	Char rune
}

// String returns the intent name for logs
func (t IntentType) String() string {
	switch t {
	case IntentChar:
		return "char"
	case IntentBackspace:
		return "backspace"
	case IntentSubmit:
		return "submit"
	case IntentQuit:
		return "quit"
	case IntentToggleMode:
		return "toggle-mode"
	case IntentPause:
		return "pause"
	case IntentToggleMute:
		return "toggle-mute"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}

// Char returns a character intent
func Char(r rune) Intent {
	return Intent{Type: IntentChar, Char: r}
}
