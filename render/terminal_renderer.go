package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/type-tutor/constants"
	"github.com/lixenwraith/type-tutor/engine"
	"github.com/lixenwraith/type-tutor/metrics"
	"github.com/lixenwraith/type-tutor/status"
)

// TerminalRenderer draws one frame per call onto a Surface
type TerminalRenderer struct {
	surface Surface
	theme   Theme
	layout  Layout
	cells   *metrics.CellMetrics
	session string
}

// NewTerminalRenderer creates a renderer sized to the surface.
// cells must be the metrics that sized the entities so drawn text matches collision extents.
func NewTerminalRenderer(surface Surface, theme Theme, cells *metrics.CellMetrics, session string) *TerminalRenderer {
	r := &TerminalRenderer{
		surface: surface,
		theme:   theme,
		cells:   cells,
		session: session,
	}
	r.Resize()
	return r
}

// Resize re-reads the surface size and returns the new layout
func (r *TerminalRenderer) Resize() Layout {
	w, h := r.surface.Size()
	r.layout = ComputeLayout(w, h)
	return r.layout
}

// Layout returns the current layout
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame draws the playfield, input box and status bar, then shows the surface
func (r *TerminalRenderer) RenderFrame(f engine.Frame, stats *status.Registry) {
	r.surface.Clear()
	defaultStyle := tcell.StyleDefault.Background(r.theme.Background)

	r.fill(0, 0, r.layout.Width, r.layout.Height, defaultStyle)

	if r.layout.TooSmall() {
		r.drawText(0, 0, r.layout.Width, "terminal too small", defaultStyle.Foreground(r.theme.InputText))
	} else {
		r.drawGlyphs(f, defaultStyle)
		r.drawInputBox(f)
	}
	r.drawStatusBar(f, stats)

	r.surface.Show()
}

// drawGlyphs draws entity characters clipped to the playfield
func (r *TerminalRenderer) drawGlyphs(f engine.Frame, defaultStyle tcell.Style) {
	pf := r.layout.Playfield
	maxX, maxY := int(pf.Right()), int(pf.Bottom())

	for _, g := range f.Glyphs {
		x, y := g.Pos.Cell()
		if x < int(pf.X) || x >= maxX || y < int(pf.Y) || y >= maxY {
			continue
		}
		r.surface.SetContent(x, y, g.Char, nil, defaultStyle.Foreground(ToTcell(g.Color)))
	}
}

// drawInputBox draws the wrapped input text; only the last lines are shown when it overflows
func (r *TerminalRenderer) drawInputBox(f engine.Frame) {
	pad := constants.InputBoxPadding
	boxStyle := tcell.StyleDefault.Background(r.theme.InputBackground)
	padStyle := tcell.StyleDefault.Background(r.theme.InputPadding)
	textStyle := boxStyle.Foreground(r.theme.InputText)

	r.fill(0, r.layout.InputY, r.layout.Width, r.layout.InputHeight, boxStyle)
	for row := 0; row < r.layout.InputHeight; row++ {
		r.fill(0, r.layout.InputY+row, pad, 1, padStyle)
		r.fill(r.layout.Width-pad, r.layout.InputY+row, pad, 1, padStyle)
	}

	textWidth := r.layout.Width - 2*pad
	if textWidth < 1 {
		return
	}

	lines := WrapText(f.Input, textWidth, r.cells)
	if len(lines) > r.layout.InputHeight {
		lines = lines[len(lines)-r.layout.InputHeight:]
	}
	for i, line := range lines {
		r.drawText(pad, r.layout.InputY+i, textWidth, line, textStyle)
	}

	if !cursorVisible(f) {
		return
	}
	cx, cy := pad, r.layout.InputY
	if n := len(lines); n > 0 {
		cx += r.cells.Columns(lines[n-1])
		cy += n - 1
	}
	if cx >= r.layout.Width-pad {
		return
	}
	r.surface.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(r.theme.InputText))
}

// cursorVisible blinks the cursor on game time; it stays lit while paused
func cursorVisible(f engine.Frame) bool {
	if f.Paused {
		return true
	}
	return (f.Now/constants.CursorBlinkInterval)%2 == 0
}

// drawStatusBar draws the mode label followed by session statistics
func (r *TerminalRenderer) drawStatusBar(f engine.Frame, stats *status.Registry) {
	y := r.layout.StatusY
	if y < 0 {
		return
	}
	barStyle := tcell.StyleDefault.Foreground(r.theme.StatusBar).Background(r.theme.Background)
	labelStyle := tcell.StyleDefault.Foreground(r.theme.StatusText).Background(r.theme.StatusBar)

	r.fill(0, y, r.layout.Width, 1, barStyle)

	label := f.Mode.Label()
	x := r.drawText(0, y, r.layout.Width, label, labelStyle)

	text := fmt.Sprintf(" Score: %d  Cleared: %d  Acc: %.0f%%  Live: %d",
		f.Score, stats.Int(status.KeyCleared), stats.Accuracy()*100, f.Live)
	if f.Paused {
		text += "  PAUSED"
	}
	if f.Muted {
		text += "  MUTED"
	}
	x = r.drawText(x, y, r.layout.Width-x, text, barStyle)

	// Session id is right-aligned when it fits
	if r.session == "" {
		return
	}
	id := " " + shortSession(r.session) + " "
	if start := r.layout.Width - r.cells.Columns(id); start > x {
		r.drawText(start, y, r.layout.Width-start, id, labelStyle)
	}
}

// shortSession keeps the first block of a uuid
func shortSession(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// drawText writes s from (x, y) clipped to width columns and returns the next free x
func (r *TerminalRenderer) drawText(x, y, width int, s string, style tcell.Style) int {
	limit := x + width
	for _, ch := range s {
		w := r.cells.RuneColumns(ch)
		if x+w > limit {
			break
		}
		r.surface.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// fill paints a w x h block of blanks
func (r *TerminalRenderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.surface.SetContent(col, row, ' ', nil, style)
		}
	}
}
