package engine

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/type-tutor/core"
	"github.com/lixenwraith/type-tutor/entity"
	"github.com/lixenwraith/type-tutor/input"
	"github.com/lixenwraith/type-tutor/match"
	"github.com/lixenwraith/type-tutor/spawn"
	"github.com/lixenwraith/type-tutor/status"
	"github.com/lixenwraith/type-tutor/vmath"
)

// ErrNoPlanner is returned when the game is created without a spawn planner
var ErrNoPlanner = errors.New("spawn planner is nil")

// SoundPlayer is the fire-and-forget audio interface used by the game
type SoundPlayer interface {
	PlayHit()
	PlayMiss()
	PlayClear()
	ToggleMute() bool
}

// Options configures a Game
type Options struct {
	Mode      core.GameMode
	Playfield vmath.Rect
	Pool      PoolConfig
}

// Frame is everything the renderer needs for one frame
type Frame struct {
	Glyphs []entity.Glyph
	Input  string
	Mode   core.GameMode
	Score  int
	Paused bool
	Muted  bool
	Live   int
	Now    time.Duration
}

// Game drives one session: each Tick drains queued input, checks the spawn timer,
// moves entities and prunes them, in that order
type Game struct {
	clock   *GameClock
	pool    *Pool
	planner *spawn.Planner
	matcher *match.Engine
	stats   *status.Registry
	sound   SoundPlayer

	pending []input.Intent
	echo    []rune
	score   int
	muted   bool
}

// NewGame creates a game spawning with planner; stats may be nil
func NewGame(planner *spawn.Planner, stats *status.Registry, opts Options) (*Game, error) {
	if planner == nil {
		return nil, ErrNoPlanner
	}
	if stats == nil {
		stats = status.NewRegistry()
	}

	g := &Game{
		clock:   NewGameClock(),
		planner: planner,
		matcher: match.NewEngine(opts.Mode),
		stats:   stats,
	}
	g.pool = NewPool(g.spawnerFor(opts.Mode), opts.Playfield, opts.Pool)
	g.matcher.SetListener(g.onOutcome)
	g.stats.SetString(status.KeyMode, opts.Mode.String())
	return g, nil
}

// SetSoundPlayer attaches audio, nil disables sound
func (g *Game) SetSoundPlayer(p SoundPlayer) {
	g.sound = p
}

// SetMuted records the initial mute state for the status bar
func (g *Game) SetMuted(muted bool) {
	g.muted = muted
}

// spawnerFor returns the spawn strategy of a mode
func (g *Game) spawnerFor(mode core.GameMode) Spawner {
	if mode == core.ModeLetters {
		return SpawnerFunc(func(_ []*entity.Entity, bounds vmath.Rect) *entity.Entity {
			return g.planner.SpawnLetter(bounds)
		})
	}
	return SpawnerFunc(g.planner.Spawn)
}

// Pool exposes the entity pool
func (g *Game) Pool() *Pool {
	return g.pool
}

// Clock exposes the game clock
func (g *Game) Clock() *GameClock {
	return g.clock
}

// Stats exposes the session statistics
func (g *Game) Stats() *status.Registry {
	return g.stats
}

// Score returns the accumulated score
func (g *Game) Score() int {
	return g.score
}

// Mode returns the active mode
func (g *Game) Mode() core.GameMode {
	return g.matcher.Mode()
}

// SetPlayfield updates the spawn area after a resize
func (g *Game) SetPlayfield(r vmath.Rect) {
	g.pool.SetBounds(r)
}

// Enqueue queues an intent for the next tick; quit and resize are handled by the caller
func (g *Game) Enqueue(in input.Intent) {
	switch in.Type {
	case input.IntentNone, input.IntentQuit, input.IntentResize:
		return
	}
	g.pending = append(g.pending, in)
}

// Tick advances the session by dt and returns the score gained during it
func (g *Game) Tick(dt time.Duration) int {
	delta := g.drainInput(g.clock.Now())

	// Pause state is settled by input before time moves
	if !g.clock.IsPaused() {
		now := g.clock.Advance(dt)
		if e := g.pool.MaybeSpawn(dt); e != nil {
			g.stats.Add(status.KeySpawned, 1)
		}
		g.pool.Tick(dt, now)
	}

	g.stats.SetInt(status.KeyAbandoned, int64(g.planner.Abandoned()))
	g.stats.SetInt(status.KeyLive, int64(g.pool.Len()))
	return delta
}

// drainInput applies queued intents in arrival order
func (g *Game) drainInput(now time.Duration) int {
	delta := 0
	for _, in := range g.pending {
		switch in.Type {
		case input.IntentPause:
			g.clock.TogglePause()
		case input.IntentToggleMute:
			if g.sound != nil {
				g.muted = g.sound.ToggleMute()
			}
		}

		if g.clock.IsPaused() {
			continue
		}

		switch in.Type {
		case input.IntentChar:
			delta += g.typeChar(in.Char, now)
		case input.IntentBackspace:
			g.matcher.Backspace()
			if len(g.echo) > 0 {
				g.echo = g.echo[:len(g.echo)-1]
			}
		case input.IntentSubmit:
			g.matcher.Submit()
			g.echo = g.echo[:0]
		case input.IntentToggleMode:
			g.switchMode(g.matcher.Mode().Next())
		}
	}
	clear(g.pending)
	g.pending = g.pending[:0]

	if delta != 0 {
		g.score += delta
		g.stats.Add(status.KeyScore, int64(delta))
	}
	return delta
}

// typeChar routes one character to the matcher
func (g *Game) typeChar(c rune, now time.Duration) int {
	if g.matcher.Mode() == core.ModeWords {
		g.echo = append(g.echo, c)
	}
	return g.matcher.HandleChar(c, g.pool.Live(), now)
}

// onOutcome updates statistics and plays feedback sounds
func (g *Game) onOutcome(o match.Outcome) {
	g.stats.Add(status.KeyKeys, 1)
	defer g.stats.UpdateAccuracy()

	if o.Miss() {
		g.stats.Add(status.KeyMisses, 1)
		if g.sound != nil {
			g.sound.PlayMiss()
		}
		return
	}

	g.stats.Add(status.KeyHits, 1)
	if len(o.Completed) > 0 {
		g.stats.Add(status.KeyCleared, int64(len(o.Completed)))
	}

	if g.matcher.Mode() == core.ModeWords && len(o.Completed) > 0 {
		// A finished word resets the echo line
		g.echo = g.echo[:0]
		if g.sound != nil {
			g.sound.PlayClear()
		}
		return
	}
	if g.sound != nil {
		g.sound.PlayHit()
	}
}

// switchMode clears the playfield and swaps matcher and spawner
func (g *Game) switchMode(mode core.GameMode) {
	g.matcher.SetMode(mode)
	g.pool.Clear()
	g.pool.SetSpawner(g.spawnerFor(mode))
	g.echo = g.echo[:0]
	g.stats.SetString(status.KeyMode, mode.String())
}

// Frame snapshots the drawable state
func (g *Game) Frame() Frame {
	now := g.clock.Now()
	live := g.pool.Live()

	glyphs := make([]entity.Glyph, 0, len(live)*4)
	for _, e := range live {
		glyphs = append(glyphs, e.Glyphs(now)...)
	}

	text := string(g.echo)
	if g.matcher.Mode() == core.ModeLetters {
		text = g.matcher.Buffer()
	}

	return Frame{
		Glyphs: glyphs,
		Input:  text,
		Mode:   g.matcher.Mode(),
		Score:  g.score,
		Paused: g.clock.IsPaused(),
		Muted:  g.muted,
		Live:   len(live),
		Now:    now,
	}
}
