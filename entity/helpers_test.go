package entity

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/lixenwraith/type-tutor/metrics"
	"github.com/lixenwraith/type-tutor/vmath"
)

var (
	testRed    = colorful.Color{R: 1}
	testYellow = colorful.Color{R: 1, G: 1}
	testGreen  = colorful.Color{G: 1}
	testGold   = colorful.Color{R: 1, G: 0.84}
)

// testStyle returns a three-entry palette with 250ms steps
func testStyle() Style {
	return Style{
		Base:    testGreen,
		Matched: testGold,
		Flash: Flash{
			Palette: []colorful.Color{testRed, testYellow, testRed},
			Step:    250 * time.Millisecond,
		},
	}
}

// pixelMetrics sizes every rune 10x20
var pixelMetrics = metrics.MeasureFunc(func(text string, _ metrics.Font) (float64, float64) {
	return float64(len([]rune(text))) * 10, 20
})

func secs(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}

// approxEqual reports whether both components differ by at most eps
func approxEqual(a, b vmath.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
