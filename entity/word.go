package entity

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/lixenwraith/type-tutor/metrics"
	"github.com/lixenwraith/type-tutor/vmath"
)

// Word is a rigid group of letters typed left to right.
// Sub-letter positions are recomputed from the anchor on every move.
type Word struct {
	Text    []rune
	Pos     vmath.Vec2 // anchor, top-left of the first letter
	Vel     vmath.Vec2
	Matched int // leading characters typed correctly

	Base         colorful.Color
	MatchedColor colorful.Color

	size    vmath.Vec2
	offsets []float64
	letters []Letter
}

// NewWord lays out text at pos, sizing each letter with tm
func NewWord(text string, pos, vel vmath.Vec2, tm metrics.TextMetrics, font metrics.Font, style Style) *Word {
	runes := []rune(text)
	w := &Word{
		Text:         runes,
		Pos:          pos,
		Vel:          vel,
		Base:         style.Base,
		MatchedColor: style.Matched,
		offsets:      make([]float64, len(runes)),
		letters:      make([]Letter, len(runes)),
	}

	var x, maxH float64
	for i, r := range runes {
		cw, ch := tm.Measure(string(r), font)
		w.offsets[i] = x
		w.letters[i] = Letter{
			Char:  r,
			Vel:   vel,
			Size:  vmath.V(cw, ch),
			Color: style.Base,
			Flash: style.Flash,
		}
		x += cw
		if ch > maxH {
			maxH = ch
		}
	}
	w.size = vmath.V(x, maxH)
	w.syncLetters()
	return w
}

// syncLetters derives every letter position from the anchor
func (w *Word) syncLetters() {
	for i := range w.letters {
		w.letters[i].Pos = vmath.V(w.Pos.X+w.offsets[i], w.Pos.Y)
		w.letters[i].Vel = w.Vel
	}
}

// String returns the word text
func (w *Word) String() string {
	return string(w.Text)
}

// Len returns the number of characters
func (w *Word) Len() int {
	return len(w.Text)
}

// Update moves the word and its letters as one body
func (w *Word) Update(dt time.Duration) {
	w.Pos = w.Pos.Add(w.Vel.Scale(dt.Seconds()))
	w.syncLetters()
}

// Size returns the measured extent of the whole word
func (w *Word) Size() vmath.Vec2 {
	return w.size
}

// Bounds returns the word bounding box
func (w *Word) Bounds() vmath.Rect {
	return vmath.NewRect(w.Pos, w.size)
}

// Letters returns the sub-letters; callers must not move them
func (w *Word) Letters() []Letter {
	return w.letters
}

// Expected returns the next character to type, ok is false once complete
func (w *Word) Expected() (rune, bool) {
	if w.Matched >= len(w.Text) {
		return 0, false
	}
	return w.Text[w.Matched], true
}

// MatchChar advances Matched by one if c is the next expected character.
// Any other character leaves progress untouched.
func (w *Word) MatchChar(c rune) bool {
	next, ok := w.Expected()
	if !ok || !sameRune(c, next) {
		return false
	}
	w.Matched++
	return true
}

// Complete reports whether every character was typed
func (w *Word) Complete() bool {
	return w.Matched == len(w.Text)
}

// IsReadyToRemove is true as soon as the word is complete
func (w *Word) IsReadyToRemove() bool {
	return w.Complete()
}

// IsOffscreen is true once any letter crosses boundary
func (w *Word) IsOffscreen(boundary float64) bool {
	for i := range w.letters {
		if w.letters[i].IsOffscreen(boundary) {
			return true
		}
	}
	return false
}

// Highlight flashes every letter; display only, progress and removal are unaffected
func (w *Word) Highlight(now time.Duration) {
	for i := range w.letters {
		w.letters[i].Highlight(now)
	}
}

// Glyphs returns one drawable per character
func (w *Word) Glyphs(now time.Duration) []Glyph {
	glyphs := make([]Glyph, len(w.letters))
	for i := range w.letters {
		l := &w.letters[i]
		color := w.Base
		switch {
		case l.Highlighted():
			color = l.DisplayColor(now)
		case i < w.Matched:
			color = w.MatchedColor
		}
		glyphs[i] = Glyph{Pos: l.Pos, Char: l.Char, Color: color}
	}
	return glyphs
}
