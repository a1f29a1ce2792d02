// Package spawn chooses what to spawn next and where to put it.
package spawn

import (
	"log"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/lixenwraith/type-tutor/entity"
	"github.com/lixenwraith/type-tutor/metrics"
	"github.com/lixenwraith/type-tutor/vmath"
	"github.com/lixenwraith/type-tutor/vocab"
)

// ErrNoMetrics is returned when the planner has no way to size text
var ErrNoMetrics = errors.New("text metrics provider is nil")

// letterPool is the alphabet used in letters mode
const letterPool = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Config holds placement and motion parameters
type Config struct {
	// MaxAttempts is the number of random placements tried per word spawn
	MaxAttempts int
	// Margin inflates both rectangles on each side during the collision test
	Margin vmath.Vec2
	// SpawnLineOffset lifts the spawn line above the playfield bottom
	SpawnLineOffset float64
	// MinSpeed and MaxSpeed bound the rise speed in units per second
	MinSpeed float64
	MaxSpeed float64

	Font  metrics.Font
	Style entity.Style
}

// Planner builds new entities at non-colliding positions
type Planner struct {
	vocab   *vocab.Vocabulary
	metrics metrics.TextMetrics
	rng     *rand.Rand
	cfg     Config

	abandoned int
}

// NewPlanner creates a planner drawing words from v
func NewPlanner(v *vocab.Vocabulary, tm metrics.TextMetrics, rng *rand.Rand, cfg Config) (*Planner, error) {
	if v.Len() == 0 {
		return nil, errors.Wrap(vocab.ErrEmptyVocabulary, "spawn planner")
	}
	if tm == nil {
		return nil, errors.Wrap(ErrNoMetrics, "spawn planner")
	}
	if rng == nil {
		return nil, errors.New("spawn planner: nil random source")
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.MaxSpeed < cfg.MinSpeed {
		cfg.MinSpeed, cfg.MaxSpeed = cfg.MaxSpeed, cfg.MinSpeed
	}
	return &Planner{vocab: v, metrics: tm, rng: rng, cfg: cfg}, nil
}

// Abandoned returns how many word spawns ran out of placement attempts
func (p *Planner) Abandoned() int {
	return p.abandoned
}

// Spawn picks a random word and places it on the spawn line without overlapping any
// live word. Returns nil when every attempt collides.
func (p *Planner) Spawn(existing []*entity.Entity, bounds vmath.Rect) *entity.Entity {
	text := p.vocab.PickRandomWord(p.rng)
	w, h := p.metrics.Measure(text, p.cfg.Font)
	y := bounds.Bottom() - p.cfg.SpawnLineOffset - h

	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		candidate := vmath.Rect{X: p.randomX(bounds, w), Y: y, W: w, H: h}
		if p.collides(candidate, existing) {
			continue
		}

		vel := vmath.V(0, -p.riseSpeed())
		word := entity.NewWord(text, vmath.V(candidate.X, candidate.Y), vel, p.metrics, p.cfg.Font, p.cfg.Style)
		return entity.NewWordEntity(word)
	}

	p.abandoned++
	log.Printf("Spawn abandoned for %q after %d attempts", text, p.cfg.MaxAttempts)
	return nil
}

// SpawnLetter places a random letter anywhere inside bounds, rising at MaxSpeed.
// Letters are not collision-checked.
func (p *Planner) SpawnLetter(bounds vmath.Rect) *entity.Entity {
	char := rune(letterPool[p.rng.IntN(len(letterPool))])
	w, h := p.metrics.Measure(string(char), p.cfg.Font)

	x := p.randomX(bounds, w)
	y := bounds.Y
	if span := bounds.H - h; span >= 1 {
		y += float64(p.rng.IntN(int(span) + 1))
	}

	letter := entity.NewLetter(char, vmath.V(x, y), vmath.V(0, -p.cfg.MaxSpeed), vmath.V(w, h), p.cfg.Style)
	return entity.NewLetterEntity(letter)
}

// randomX returns an integral x keeping a box of width w inside bounds
func (p *Planner) randomX(bounds vmath.Rect, w float64) float64 {
	span := bounds.W - w
	if span < 1 {
		return bounds.X
	}
	return bounds.X + float64(p.rng.IntN(int(span)+1))
}

// collides tests the inflated candidate against every live word's inflated box
func (p *Planner) collides(candidate vmath.Rect, existing []*entity.Entity) bool {
	inflated := candidate.Inflate(p.cfg.Margin.X, p.cfg.Margin.Y)
	for _, e := range existing {
		if e.Kind() != entity.KindWord {
			continue
		}
		other := e.Bounds().Inflate(p.cfg.Margin.X, p.cfg.Margin.Y)
		if inflated.Intersects(other) {
			return true
		}
	}
	return false
}

// riseSpeed draws a speed from [MinSpeed, MaxSpeed]
func (p *Planner) riseSpeed() float64 {
	return p.cfg.MinSpeed + p.rng.Float64()*(p.cfg.MaxSpeed-p.cfg.MinSpeed)
}
