package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/lixenwraith/type-tutor/audio"
	"github.com/lixenwraith/type-tutor/config"
	"github.com/lixenwraith/type-tutor/constants"
	"github.com/lixenwraith/type-tutor/engine"
	"github.com/lixenwraith/type-tutor/input"
	"github.com/lixenwraith/type-tutor/metrics"
	"github.com/lixenwraith/type-tutor/spawn"
	"github.com/lixenwraith/type-tutor/status"
	"github.com/lixenwraith/type-tutor/vmath"
	"github.com/lixenwraith/type-tutor/vocab"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	modeFlag   = flag.String("mode", "", "Start mode: words or letters")
	assetsFlag = flag.String("assets", "", "Directory holding words.txt and frequency_list.txt")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/type-tutor.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one")
	fpsFlag    = flag.Int("fps", 0, "Frames per second")
)

// applyFlags copies explicitly set flags over cfg
func applyFlags(cfg *config.Config, set map[string]bool) {
	if set["mode"] {
		cfg.Mode = *modeFlag
	}
	if set["assets"] {
		cfg.AssetsDir = *assetsFlag
	}
	if set["debug"] {
		cfg.Debug = *debugFlag
	}
	if set["mute"] {
		cfg.Muted = *muteFlag
	}
	if set["seed"] {
		cfg.Seed = *seedFlag
	}
	if set["fps"] {
		cfg.FPS = *fpsFlag
	}
}

// setFlags returns the names of flags given on the command line
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// app holds the wired components of one run
type app struct {
	cfg     *config.Config
	palette config.Palette
	stats   *status.Registry
	game    *engine.Game
	keys    *input.KeyTable
	sound   *audio.SoundManager
}

// newApp loads the vocabulary and wires planner, game and sound for a validated cfg
func newApp(cfg *config.Config, session string, playfield vmath.Rect, cells *metrics.CellMetrics) (*app, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	vocabulary, err := vocab.NewLoader(cfg.AssetsDir).Load(vocab.Filter{
		MinLen: cfg.Words.MinLength,
		MaxLen: cfg.Words.MaxLength,
	})
	if err != nil {
		return nil, errors.Wrap(err, "load vocabulary")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("Random seed %d", seed)

	planner, err := spawn.NewPlanner(vocabulary, cells, rand.New(rand.NewPCG(seed, seed>>1|1)), spawn.Config{
		MaxAttempts:     cfg.Spawn.MaxAttempts,
		Margin:          cfg.SpawnMargin(),
		SpawnLineOffset: cfg.Spawn.LineOffset,
		MinSpeed:        cfg.Spawn.MinSpeed,
		MaxSpeed:        cfg.Spawn.MaxSpeed,
		Style:           cfg.EntityStyle(palette),
	})
	if err != nil {
		return nil, err
	}

	stats := status.NewRegistry()
	stats.SetString(status.KeySession, session)

	game, err := engine.NewGame(planner, stats, engine.Options{
		Mode:      cfg.GameMode(),
		Playfield: playfield,
		Pool: engine.PoolConfig{
			SpawnInterval: cfg.Spawn.Interval,
			Boundary:      constants.OffscreenBoundary,
		},
	})
	if err != nil {
		return nil, err
	}

	sound := audio.NewSoundManager(cfg.Muted)
	game.SetSoundPlayer(sound)
	game.SetMuted(cfg.Muted)

	return &app{
		cfg:     cfg,
		palette: palette,
		stats:   stats,
		game:    game,
		keys:    input.DefaultKeyTable(),
		sound:   sound,
	}, nil
}

// summary is the one-line end of session report
func (a *app) summary() string {
	return fmt.Sprintf("mode=%s score=%d cleared=%d accuracy=%.1f%% keys=%d",
		a.game.Mode(),
		a.game.Score(),
		a.stats.Int(status.KeyCleared),
		a.stats.Accuracy()*100,
		a.stats.Int(status.KeyKeys),
	)
}
