package core

import "strings"

// GameMode selects what floats on the playfield and how keystrokes are matched
type GameMode uint8

const (
	ModeWords GameMode = iota
	ModeLetters
)

// String returns the lower-case mode name used by flags and config
func (m GameMode) String() string {
	switch m {
	case ModeLetters:
		return "letters"
	default:
		return "words"
	}
}

// Label returns the padded mode indicator shown in the status bar
func (m GameMode) Label() string {
	switch m {
	case ModeLetters:
		return " LETTERS "
	default:
		return "  WORDS  "
	}
}

// Next returns the other mode
func (m GameMode) Next() GameMode {
	if m == ModeWords {
		return ModeLetters
	}
	return ModeWords
}

// ParseMode converts a mode name to GameMode, ok is false for unknown names
func ParseMode(s string) (GameMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "words", "word", "":
		return ModeWords, true
	case "letters", "letter":
		return ModeLetters, true
	}
	return ModeWords, false
}
