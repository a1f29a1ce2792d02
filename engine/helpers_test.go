package engine

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/type-tutor/entity"
	"github.com/lixenwraith/type-tutor/metrics"
	"github.com/lixenwraith/type-tutor/spawn"
	"github.com/lixenwraith/type-tutor/vmath"
	"github.com/lixenwraith/type-tutor/vocab"
)

var testStyle = entity.Style{
	Base:    colorful.Color{G: 1},
	Matched: colorful.Color{R: 1, G: 1},
	Flash: entity.Flash{
		Palette: []colorful.Color{{R: 1}, {R: 1, G: 1}, {R: 1}},
		Step:    250 * time.Millisecond,
	},
}

func newTestPlanner(t *testing.T, words ...string) *spawn.Planner {
	t.Helper()
	v, err := vocab.New(words, nil, vocab.Filter{MinLen: 1, MaxLen: 20})
	if err != nil {
		t.Fatalf("Failed to build vocabulary: %v", err)
	}
	p, err := spawn.NewPlanner(v, metrics.NewCellMetrics(), rand.New(rand.NewPCG(1, 2)), spawn.Config{
		MaxAttempts: 10,
		Margin:      vmath.V(2, 1),
		MinSpeed:    1,
		MaxSpeed:    2,
		Style:       testStyle,
	})
	if err != nil {
		t.Fatalf("Failed to build planner: %v", err)
	}
	return p
}

func testWord(text string, pos, vel vmath.Vec2) *entity.Entity {
	w := entity.NewWord(text, pos, vel, metrics.NewCellMetrics(), metrics.Font{}, testStyle)
	return entity.NewWordEntity(w)
}

// fakeSound counts played effects
type fakeSound struct {
	hits, misses, clears int
	muted                bool
}

func (f *fakeSound) PlayHit()   { f.hits++ }
func (f *fakeSound) PlayMiss()  { f.misses++ }
func (f *fakeSound) PlayClear() { f.clears++ }
func (f *fakeSound) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}
