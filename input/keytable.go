package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps special keys to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlQ:      IntentQuit,
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyEscape:     IntentQuit,
			tcell.KeyEnter:      IntentSubmit,
			tcell.KeyBackspace:  IntentBackspace,
			tcell.KeyBackspace2: IntentBackspace,
			tcell.KeyTab:        IntentToggleMode,
			tcell.KeyCtrlP:      IntentPause,
			tcell.KeyCtrlS:      IntentToggleMute,
		},
	}
}

// Translate converts a tcell event to an intent
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.translateKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

// translateKey resolves special keys first, then printable runes
func (kt *KeyTable) translateKey(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		if unicode.IsPrint(r) {
			return Char(r)
		}
		return Intent{}
	}
	if t, ok := kt.SpecialKeys[key]; ok {
		return Intent{Type: t}
	}
	return Intent{}
}
