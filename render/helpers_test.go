package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// fakeSurface records the last content of every cell
type fakeSurface struct {
	width, height int
	cells         [][]cell
	shown         int
}

func newFakeSurface(w, h int) *fakeSurface {
	s := &fakeSurface{width: w, height: h}
	s.Clear()
	return s
}

func (s *fakeSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y][x] = cell{ch: primary, style: style}
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) Clear() {
	s.cells = make([][]cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]cell, s.width)
	}
}

func (s *fakeSurface) Show() { s.shown++ }

// row returns the characters of line y with blanks for unset cells
func (s *fakeSurface) row(y int) string {
	var b strings.Builder
	for _, c := range s.cells[y] {
		if c.ch == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.ch)
	}
	return b.String()
}
