package render

import "github.com/gdamore/tcell/v2"

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}
