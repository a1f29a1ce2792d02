// Package metrics measures rendered text for layout and collision sizing.
package metrics

import "github.com/mattn/go-runewidth"

// Font identifies a typeface and size, opaque to everything except a TextMetrics implementation
type Font struct {
	Name string
	Size float64
}

// TextMetrics returns the rendered width and height of text in a font.
// Implementations must be deterministic for a given (text, font) pair.
type TextMetrics interface {
	Measure(text string, font Font) (width, height float64)
}

// MeasureFunc adapts a function to TextMetrics
type MeasureFunc func(text string, font Font) (width, height float64)

// Measure calls f(text, font)
func (f MeasureFunc) Measure(text string, font Font) (float64, float64) {
	return f(text, font)
}

// CellMetrics measures text on a terminal grid: width is the display column count
// (East Asian wide runes take two cells), height is one row.
// The font is ignored since a terminal has a single monospace face.
type CellMetrics struct {
	CellWidth  float64
	CellHeight float64
	cond       *runewidth.Condition
}

// NewCellMetrics creates metrics for 1x1 cells
func NewCellMetrics() *CellMetrics {
	cond := runewidth.NewCondition()
	// Ambiguous-width runes render narrow in the terminals we target
	cond.EastAsianWidth = false
	return &CellMetrics{
		CellWidth:  1,
		CellHeight: 1,
		cond:       cond,
	}
}

// Measure implements TextMetrics
func (m *CellMetrics) Measure(text string, _ Font) (float64, float64) {
	if text == "" {
		return 0, m.CellHeight
	}
	return float64(m.cond.StringWidth(text)) * m.CellWidth, m.CellHeight
}

// Columns returns the display width of text in cells
func (m *CellMetrics) Columns(text string) int {
	return m.cond.StringWidth(text)
}

// RuneColumns returns the display width of a single rune in cells
func (m *CellMetrics) RuneColumns(r rune) int {
	return m.cond.RuneWidth(r)
}
