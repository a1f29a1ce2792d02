// Package match routes typed characters to live entities and scores the result.
//
// Words mode uses incremental, non-resetting matching: every keystroke is offered to
// every live word independently, a correct next character advances that word by one,
// and a wrong character leaves its progress untouched. There is no shared input
// buffer in words mode.
//
// Letters mode keeps a free-text buffer; each keystroke is appended and the trailing
// character is matched against at most one idle letter, oldest first. A matched
// character is removed from the buffer.
package match

import (
	"time"

	"github.com/lixenwraith/type-tutor/constants"
	"github.com/lixenwraith/type-tutor/core"
	"github.com/lixenwraith/type-tutor/entity"
)

// Outcome summarizes one keystroke
type Outcome struct {
	Char       rune
	Advanced   int              // entities whose match state changed
	Completed  []*entity.Entity // entities finished by this keystroke
	ScoreDelta int
}

// Miss reports whether the keystroke matched nothing
func (o Outcome) Miss() bool {
	return o.Advanced == 0
}

// Listener is notified after every keystroke
type Listener func(Outcome)

// Engine applies keystrokes to live entities. It changes match state only,
// it never adds or removes entities.
type Engine struct {
	mode     core.GameMode
	buffer   []rune
	listener Listener
}

// NewEngine creates an engine for mode
func NewEngine(mode core.GameMode) *Engine {
	return &Engine{mode: mode}
}

// SetListener registers the per-keystroke callback, nil disables it
func (e *Engine) SetListener(l Listener) {
	e.listener = l
}

// Mode returns the matching mode
func (e *Engine) Mode() core.GameMode {
	return e.mode
}

// SetMode switches mode and clears the buffer
func (e *Engine) SetMode(mode core.GameMode) {
	e.mode = mode
	e.buffer = e.buffer[:0]
}

// Buffer returns the pending letters-mode input
func (e *Engine) Buffer() string {
	return string(e.buffer)
}

// Backspace drops the last buffered character
func (e *Engine) Backspace() {
	if len(e.buffer) > 0 {
		e.buffer = e.buffer[:len(e.buffer)-1]
	}
}

// Submit clears the buffer
func (e *Engine) Submit() {
	e.buffer = e.buffer[:0]
}

// HandleChar applies c to live entities at game time now and returns the score delta
func (e *Engine) HandleChar(c rune, live []*entity.Entity, now time.Duration) int {
	var out Outcome
	switch e.mode {
	case core.ModeLetters:
		out = e.matchLetter(c, live, now)
	default:
		out = e.matchWords(c, live, now)
	}

	if e.listener != nil {
		e.listener(out)
	}
	return out.ScoreDelta
}

// matchLetter highlights the oldest idle letter equal to the trailing buffered character
func (e *Engine) matchLetter(c rune, live []*entity.Entity, now time.Duration) Outcome {
	e.buffer = append(e.buffer, c)
	out := Outcome{Char: c}

	trailing := e.buffer[len(e.buffer)-1]
	for _, ent := range live {
		if ent.Kind() != entity.KindLetter {
			continue
		}
		if ent.MatchChar(trailing, now) {
			e.buffer = e.buffer[:len(e.buffer)-1]
			out.Advanced = 1
			out.Completed = []*entity.Entity{ent}
			out.ScoreDelta = constants.LetterScore
			break
		}
	}
	return out
}

// matchWords offers c to every live word
func (e *Engine) matchWords(c rune, live []*entity.Entity, now time.Duration) Outcome {
	out := Outcome{Char: c}
	for _, ent := range live {
		w, ok := ent.Word()
		if !ok || w.Complete() {
			continue
		}
		if !ent.MatchChar(c, now) {
			continue
		}
		out.Advanced++
		if w.Complete() {
			out.Completed = append(out.Completed, ent)
			out.ScoreDelta += w.Len()
		}
	}
	return out
}
