package entity

import (
	"time"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// Flash describes the highlight animation of a letter: one palette entry per Step,
// a full pass over the palette is one flash cycle
type Flash struct {
	Palette []colorful.Color
	Step    time.Duration
}

// Cycle returns the duration of one full pass over the palette
func (f Flash) Cycle() time.Duration {
	return f.Step * time.Duration(len(f.Palette))
}

// ColorAt returns the palette entry shown elapsed after the flash started
func (f Flash) ColorAt(elapsed time.Duration) (colorful.Color, bool) {
	if len(f.Palette) == 0 || f.Step <= 0 {
		return colorful.Color{}, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	idx := int(elapsed/f.Step) % len(f.Palette)
	return f.Palette[idx], true
}

// Style is the shared colour scheme of spawned entities
type Style struct {
	Base    colorful.Color // unmatched characters
	Matched colorful.Color // word characters already typed
	Flash   Flash
}

// sameRune compares two runes case-insensitively
func sameRune(a, b rune) bool {
	if a == b {
		return true
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// offscreen reports whether an extent [y, y+h) moving with vy has crossed boundary
// in its direction of travel
func offscreen(y, h, vy, boundary float64) bool {
	switch {
	case vy < 0:
		return y+h < boundary
	case vy > 0:
		return y > boundary
	default:
		return false
	}
}
