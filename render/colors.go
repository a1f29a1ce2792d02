package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/type-tutor/config"
)

// Theme holds the terminal colours of every UI region
type Theme struct {
	Background      tcell.Color
	InputBackground tcell.Color
	InputText       tcell.Color
	InputPadding    tcell.Color
	StatusBar       tcell.Color
	StatusText      tcell.Color
}

// paddingBlend is how far the input box padding fades toward the background
const paddingBlend = 0.35

// NewTheme converts a parsed palette to terminal colours
func NewTheme(p config.Palette) Theme {
	return Theme{
		Background:      ToTcell(p.Background),
		InputBackground: ToTcell(p.InputBackground),
		InputText:       ToTcell(p.InputText),
		InputPadding:    ToTcell(p.InputBackground.BlendLab(p.Background, paddingBlend).Clamped()),
		StatusBar:       ToTcell(p.StatusBar),
		StatusText:      ToTcell(p.StatusText),
	}
}

// ToTcell converts a colour to a 24-bit terminal colour
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
