package entity

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/lixenwraith/type-tutor/vmath"
)

// Phase is the highlight state of a letter
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseFlashing
)

// Letter is a single floating character
type Letter struct {
	Char  rune
	Pos   vmath.Vec2 // top-left corner
	Vel   vmath.Vec2 // units per second
	Size  vmath.Vec2 // measured glyph extent
	Color colorful.Color
	Flash Flash

	phase      Phase
	flashStart time.Duration
}

// NewLetter creates an idle letter
func NewLetter(char rune, pos, vel, size vmath.Vec2, style Style) *Letter {
	return &Letter{
		Char:  char,
		Pos:   pos,
		Vel:   vel,
		Size:  size,
		Color: style.Base,
		Flash: style.Flash,
	}
}

// Update integrates position linearly over dt
func (l *Letter) Update(dt time.Duration) {
	l.Pos = l.Pos.Add(l.Vel.Scale(dt.Seconds()))
}

// IsOffscreen reports whether the glyph has fully crossed boundary in its direction of travel
func (l *Letter) IsOffscreen(boundary float64) bool {
	return offscreen(l.Pos.Y, l.Size.Y, l.Vel.Y, boundary)
}

// Highlight starts the flash at now; repeated calls keep the original start time
func (l *Letter) Highlight(now time.Duration) {
	if l.phase == PhaseFlashing {
		return
	}
	l.phase = PhaseFlashing
	l.flashStart = now
}

// Highlighted reports whether the letter is flashing
func (l *Letter) Highlighted() bool {
	return l.phase == PhaseFlashing
}

// DisplayColor returns the colour to draw at now
func (l *Letter) DisplayColor(now time.Duration) colorful.Color {
	if l.phase != PhaseFlashing {
		return l.Color
	}
	if c, ok := l.Flash.ColorAt(now - l.flashStart); ok {
		return c
	}
	return l.Color
}

// IsReadyToRemove is true once a full flash cycle has elapsed since the highlight
func (l *Letter) IsReadyToRemove(now time.Duration) bool {
	return l.phase == PhaseFlashing && now-l.flashStart >= l.Flash.Cycle()
}

// MatchChar highlights the letter if c is its character (case-insensitive).
// A letter that is already flashing does not match again.
func (l *Letter) MatchChar(c rune, now time.Duration) bool {
	if l.phase == PhaseFlashing || !sameRune(c, l.Char) {
		return false
	}
	l.Highlight(now)
	return true
}

// Bounds returns the glyph bounding box
func (l *Letter) Bounds() vmath.Rect {
	return vmath.NewRect(l.Pos, l.Size)
}
