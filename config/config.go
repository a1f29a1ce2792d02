// Package config loads game settings from YAML on top of built-in defaults.
package config

import (
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/type-tutor/constants"
	"github.com/lixenwraith/type-tutor/core"
	"github.com/lixenwraith/type-tutor/entity"
	"github.com/lixenwraith/type-tutor/vmath"
)

// Config is the complete set of tunables. Durations accept Go syntax ("1500ms").
type Config struct {
	Mode      string `yaml:"mode"`
	AssetsDir string `yaml:"assets_dir"`
	FPS       int    `yaml:"fps"`
	// Seed fixes the random source; zero picks one at startup
	Seed  uint64 `yaml:"seed"`
	Muted bool   `yaml:"muted"`
	Debug bool   `yaml:"debug"`

	Spawn  SpawnConfig `yaml:"spawn"`
	Words  WordsConfig `yaml:"words"`
	Colors ColorConfig `yaml:"colors"`
}

// SpawnConfig controls spawn cadence, placement and motion
type SpawnConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MaxAttempts int           `yaml:"max_attempts"`
	MarginX     float64       `yaml:"margin_x"`
	MarginY     float64       `yaml:"margin_y"`
	LineOffset  float64       `yaml:"line_offset"`
	MinSpeed    float64       `yaml:"min_speed"`
	MaxSpeed    float64       `yaml:"max_speed"`
	FlashStep   time.Duration `yaml:"flash_step"`
}

// WordsConfig bounds vocabulary word length
type WordsConfig struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

// ColorConfig holds hex colour strings
type ColorConfig struct {
	Background      string   `yaml:"background"`
	Entity          string   `yaml:"entity"`
	Matched         string   `yaml:"matched"`
	InputBackground string   `yaml:"input_background"`
	InputText       string   `yaml:"input_text"`
	StatusText      string   `yaml:"status_text"`
	StatusBar       string   `yaml:"status_bar"`
	Flash           []string `yaml:"flash"`
}

// Palette is ColorConfig parsed into colours
type Palette struct {
	Background      colorful.Color
	Entity          colorful.Color
	Matched         colorful.Color
	InputBackground colorful.Color
	InputText       colorful.Color
	StatusText      colorful.Color
	StatusBar       colorful.Color
	Flash           []colorful.Color
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Mode:      core.ModeWords.String(),
		AssetsDir: "assets",
		FPS:       constants.FrameRate,
		Spawn: SpawnConfig{
			Interval:    constants.SpawnInterval,
			MaxAttempts: constants.SpawnMaxAttempts,
			MarginX:     constants.SpawnMarginX,
			MarginY:     constants.SpawnMarginY,
			LineOffset:  constants.SpawnLineOffset,
			MinSpeed:    constants.MinRiseSpeed,
			MaxSpeed:    constants.MaxRiseSpeed,
			FlashStep:   constants.FlashStepDuration,
		},
		Words: WordsConfig{
			MinLength: constants.MinWordLength,
			MaxLength: constants.MaxWordLength,
		},
		Colors: ColorConfig{
			Background:      constants.ColorBackground,
			Entity:          constants.ColorEntity,
			Matched:         constants.ColorMatched,
			InputBackground: constants.ColorInputBackground,
			InputText:       constants.ColorInputText,
			StatusText:      constants.ColorStatusText,
			StatusBar:       constants.ColorStatusBar,
			Flash:           append([]string(nil), constants.DefaultFlashPalette...),
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults.
// The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks ranges and colour syntax
func (c *Config) Validate() error {
	if _, ok := core.ParseMode(c.Mode); !ok {
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return errors.Errorf("fps %d out of range [1, 240]", c.FPS)
	}

	s := c.Spawn
	switch {
	case s.Interval <= 0:
		return errors.Errorf("spawn interval must be positive, got %v", s.Interval)
	case s.MaxAttempts < 1:
		return errors.Errorf("spawn max_attempts must be at least 1, got %d", s.MaxAttempts)
	case s.MarginX < 0 || s.MarginY < 0:
		return errors.New("spawn margins must not be negative")
	case s.MinSpeed <= 0 || s.MaxSpeed < s.MinSpeed:
		return errors.Errorf("invalid rise speed range [%v, %v]", s.MinSpeed, s.MaxSpeed)
	case s.FlashStep <= 0:
		return errors.Errorf("flash step must be positive, got %v", s.FlashStep)
	}

	if c.Words.MinLength < 1 || c.Words.MaxLength < c.Words.MinLength {
		return errors.Errorf("invalid word length range [%d, %d]", c.Words.MinLength, c.Words.MaxLength)
	}

	_, err := c.Palette()
	return err
}

// GameMode returns the configured start mode, falling back to words
func (c *Config) GameMode() core.GameMode {
	if m, ok := core.ParseMode(c.Mode); ok {
		return m
	}
	return core.ModeWords
}

// Palette parses every colour
func (c *Config) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"background", c.Colors.Background, &p.Background},
		{"entity", c.Colors.Entity, &p.Entity},
		{"matched", c.Colors.Matched, &p.Matched},
		{"input_background", c.Colors.InputBackground, &p.InputBackground},
		{"input_text", c.Colors.InputText, &p.InputText},
		{"status_text", c.Colors.StatusText, &p.StatusText},
		{"status_bar", c.Colors.StatusBar, &p.StatusBar},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, errors.Wrapf(err, "colour %s", f.name)
		}
		*f.dst = col
	}

	if len(c.Colors.Flash) == 0 {
		return Palette{}, errors.New("flash palette is empty")
	}
	for i, hex := range c.Colors.Flash {
		col, err := colorful.Hex(hex)
		if err != nil {
			return Palette{}, errors.Wrapf(err, "flash colour %d", i)
		}
		p.Flash = append(p.Flash, col)
	}
	return p, nil
}

// EntityStyle builds the entity colouring from the palette
func (c *Config) EntityStyle(p Palette) entity.Style {
	return entity.Style{
		Base:    p.Entity,
		Matched: p.Matched,
		Flash: entity.Flash{
			Palette: p.Flash,
			Step:    c.Spawn.FlashStep,
		},
	}
}

// SpawnMargin returns the collision margin as a vector
func (c *Config) SpawnMargin() vmath.Vec2 {
	return vmath.V(c.Spawn.MarginX, c.Spawn.MarginY)
}
