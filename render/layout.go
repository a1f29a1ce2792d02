package render

import (
	"github.com/lixenwraith/type-tutor/constants"
	"github.com/lixenwraith/type-tutor/vmath"
)

// Layout splits the terminal into playfield, input box and status bar, top to bottom
type Layout struct {
	Width  int
	Height int

	// Playfield is empty when the terminal is too short to play
	Playfield vmath.Rect

	InputY      int
	InputHeight int
	StatusY     int
}

// ComputeLayout sizes every region for a width x height terminal
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: max(width, 0), Height: max(height, 0)}

	l.StatusY = l.Height - constants.StatusBarHeight
	l.InputHeight = constants.InputBoxHeight
	l.InputY = l.StatusY - l.InputHeight

	if l.InputY < constants.MinPlayfieldHeight || l.Width == 0 {
		return l
	}
	l.Playfield = vmath.Rect{W: float64(l.Width), H: float64(l.InputY)}
	return l
}

// TooSmall reports whether there is no room to play
func (l Layout) TooSmall() bool {
	return l.Playfield.Empty()
}
