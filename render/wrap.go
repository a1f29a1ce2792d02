package render

import (
	"strings"

	"github.com/lixenwraith/type-tutor/metrics"
)

// WrapText breaks text on spaces into lines at most width columns wide, measured by cells.
// A word wider than the line is split across lines. Empty text yields no lines.
func WrapText(text string, width int, cells *metrics.CellMetrics) []string {
	if text == "" || width < 1 {
		return nil
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentWidth = 0
	}

	for i, word := range strings.Split(text, " ") {
		wordWidth := cells.Columns(word)

		if i > 0 {
			if currentWidth+1+wordWidth <= width {
				current.WriteByte(' ')
				currentWidth++
			} else {
				flush()
			}
		}

		// Hard split anything that cannot fit on a line of its own
		for _, r := range word {
			rw := cells.RuneColumns(r)
			if currentWidth+rw > width && currentWidth > 0 {
				flush()
			}
			current.WriteRune(r)
			currentWidth += rw
		}
	}
	flush()
	return lines
}
