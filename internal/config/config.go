// Package config loads DriftBoard settings from a TOML file, a .env file and
// DRIFTBOARD_* environment variables, in that order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/render"
	"DriftBoard/internal/state"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DRIFTBOARD_"

var (
	ErrInvalidTool     = errors.New("invalid tool")
	ErrInvalidColor    = errors.New("invalid colour")
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidVelocity = errors.New("invalid velocity")
	ErrInvalidWindow   = errors.New("invalid window size")
	ErrInvalidFrontend = errors.New("invalid frontend")
	ErrInvalidRate     = errors.New("invalid frame rate")
)

// Frontend selects the user interface
type Frontend string

const (
	FrontendDesktop  Frontend = "desktop"
	FrontendTerminal Frontend = "terminal"
)

type Window struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Tools holds the initial toolbar values and the swatches offered
type Tools struct {
	state.Settings
	Palette []string `toml:"palette"`
	MaxSize float64  `toml:"max_size"`
}

type Render struct {
	Background string  `toml:"background"`
	Glow       float64 `toml:"glow"`
	FPS        int     `toml:"fps"`
}

type Sound struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type Export struct {
	Dir string `toml:"dir"`
	// Format is the default snapshot format, "pdf" or "txt"
	Format string `toml:"format"`
}

type Terminal struct {
	// CellScale is the number of board units per terminal cell column;
	// rows are twice as tall
	CellScale float64 `toml:"cell_scale"`
	FPS       int     `toml:"fps"`
}

type Config struct {
	Frontend Frontend `toml:"frontend"`
	Seed     int64    `toml:"seed"`
	Window   Window   `toml:"window"`
	Tools    Tools    `toml:"tools"`
	Render   Render   `toml:"render"`
	Sound    Sound    `toml:"sound"`
	Export   Export   `toml:"export"`
	Terminal Terminal `toml:"terminal"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Frontend: FrontendDesktop,
		Window: Window{
			Title:  "DriftBoard",
			Width:  1200,
			Height: 800,
		},
		Tools: Tools{
			Settings: state.DefaultSettings(),
			Palette: []string{
				"#50fa7b", "#ff79c6", "#8be9fd", "#f1fa8c",
				"#bd93f9", "#ffb86c", "#ff5555", "#f8f8f2",
			},
			MaxSize: 40,
		},
		Render: Render{
			Background: state.EraserColor,
			Glow:       10,
			FPS:        60,
		},
		Sound: Sound{
			Volume: 0.3,
		},
		Export: Export{
			Dir:    ".",
			Format: "pdf",
		},
		Terminal: Terminal{
			CellScale: 8,
			FPS:       30,
		},
	}
}

// Load reads path over the defaults, then applies .env and environment
// overrides. An empty path skips the file; a missing .env is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			log.Printf("[CONFIG] Ignoring unknown keys in %s: %v", path, undecoded)
		}
		log.Printf("[CONFIG] Loaded %s", path)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[CONFIG] .env: %v", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from DRIFTBOARD_* variables
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	float := func(key string, dst *float64) error {
		v, ok := get(key)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = f
		return nil
	}

	if v, ok := get("FRONTEND"); ok {
		c.Frontend = Frontend(strings.ToLower(v))
	}
	if v, ok := get("TOOL"); ok {
		c.Tools.Tool = geom.Tool(strings.ToLower(v))
	}
	if v, ok := get("COLOR"); ok {
		c.Tools.Color = v
	}
	if v, ok := get("SOUND"); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSOUND: %w", EnvPrefix, err)
		}
		c.Sound.Enabled = on
	}
	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := get("EXPORT_DIR"); ok {
		c.Export.Dir = v
	}

	if err := float("SIZE", &c.Tools.Size); err != nil {
		return err
	}
	if err := float("VELOCITY", &c.Tools.Velocity); err != nil {
		return err
	}
	return nil
}

// Validate checks the values the core relies on
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFrontend, c.Frontend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if !c.Tools.Tool.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTool, c.Tools.Tool)
	}
	if _, err := render.ParseColor(c.Tools.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	for _, p := range c.Tools.Palette {
		if _, err := render.ParseColor(p); err != nil {
			return fmt.Errorf("%w: palette: %v", ErrInvalidColor, err)
		}
	}
	if _, err := render.ParseColor(c.Render.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidColor, err)
	}
	if c.Tools.Size <= 0 || (c.Tools.MaxSize > 0 && c.Tools.Size > c.Tools.MaxSize) {
		return fmt.Errorf("%w: %g", ErrInvalidSize, c.Tools.Size)
	}
	if c.Tools.Velocity < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidVelocity, c.Tools.Velocity)
	}
	if c.Render.FPS <= 0 || c.Terminal.FPS <= 0 {
		return fmt.Errorf("%w: render %d, terminal %d", ErrInvalidRate, c.Render.FPS, c.Terminal.FPS)
	}
	if c.Terminal.CellScale <= 0 {
		return fmt.Errorf("%w: cell scale %g", ErrInvalidSize, c.Terminal.CellScale)
	}
	return nil
}
