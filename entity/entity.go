// Package entity implements the floating letters and words of the playfield.
//
// Entity is a closed variant over Letter and Word. Callers use the shared
// capability set (Update, IsOffscreen, Highlight, IsReadyToRemove, MatchChar)
// and never inspect the concrete type to drive behavior.
package entity

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/lixenwraith/type-tutor/vmath"
)

// Kind tags the entity variant
type Kind uint8

const (
	KindLetter Kind = iota + 1
	KindWord
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindLetter:
		return "letter"
	case KindWord:
		return "word"
	default:
		return "unknown"
	}
}

// Glyph is the per-character render description of an entity
type Glyph struct {
	Pos   vmath.Vec2
	Char  rune
	Color colorful.Color
}

// Entity is a Letter or a Word alive on the playfield
type Entity struct {
	ID uint64

	kind   Kind
	letter *Letter
	word   *Word
}

// NewLetterEntity wraps a letter
func NewLetterEntity(l *Letter) *Entity {
	return &Entity{kind: KindLetter, letter: l}
}

// NewWordEntity wraps a word
func NewWordEntity(w *Word) *Entity {
	return &Entity{kind: KindWord, word: w}
}

// Kind returns the variant tag
func (e *Entity) Kind() Kind {
	return e.kind
}

// Letter returns the letter variant
func (e *Entity) Letter() (*Letter, bool) {
	return e.letter, e.kind == KindLetter
}

// Word returns the word variant
func (e *Entity) Word() (*Word, bool) {
	return e.word, e.kind == KindWord
}

// Text returns the characters carried by the entity
func (e *Entity) Text() string {
	switch e.kind {
	case KindLetter:
		return string(e.letter.Char)
	case KindWord:
		return e.word.String()
	}
	return ""
}

// Update advances motion by dt
func (e *Entity) Update(dt time.Duration) {
	switch e.kind {
	case KindLetter:
		e.letter.Update(dt)
	case KindWord:
		e.word.Update(dt)
	}
}

// IsOffscreen reports whether the entity left the playfield across boundary
func (e *Entity) IsOffscreen(boundary float64) bool {
	switch e.kind {
	case KindLetter:
		return e.letter.IsOffscreen(boundary)
	case KindWord:
		return e.word.IsOffscreen(boundary)
	}
	return true
}

// Highlight starts the highlight animation at now
func (e *Entity) Highlight(now time.Duration) {
	switch e.kind {
	case KindLetter:
		e.letter.Highlight(now)
	case KindWord:
		e.word.Highlight(now)
	}
}

// IsReadyToRemove reports whether the entity has finished its lifecycle at now
func (e *Entity) IsReadyToRemove(now time.Duration) bool {
	switch e.kind {
	case KindLetter:
		return e.letter.IsReadyToRemove(now)
	case KindWord:
		return e.word.IsReadyToRemove()
	}
	return true
}

// MatchChar applies a typed character, reporting whether it advanced the entity
func (e *Entity) MatchChar(c rune, now time.Duration) bool {
	switch e.kind {
	case KindLetter:
		return e.letter.MatchChar(c, now)
	case KindWord:
		return e.word.MatchChar(c)
	}
	return false
}

// Bounds returns the bounding box used for collision tests
func (e *Entity) Bounds() vmath.Rect {
	switch e.kind {
	case KindLetter:
		return e.letter.Bounds()
	case KindWord:
		return e.word.Bounds()
	}
	return vmath.Rect{}
}

// Glyphs returns the drawables for the current frame
func (e *Entity) Glyphs(now time.Duration) []Glyph {
	switch e.kind {
	case KindLetter:
		return []Glyph{{Pos: e.letter.Pos, Char: e.letter.Char, Color: e.letter.DisplayColor(now)}}
	case KindWord:
		return e.word.Glyphs(now)
	}
	return nil
}
