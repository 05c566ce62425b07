// Package config holds the board settings: window and field size, pen and
// eraser defaults, the color palette and the starting marker layout.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"TacticalBoard/internal/render"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string          `toml:"log_level"`
	Window   Size            `toml:"window"`
	Field    Size            `toml:"field"`
	Pen      Pen             `toml:"pen"`
	Eraser   Eraser          `toml:"eraser"`
	Palette  []string        `toml:"palette"`
	Teams    map[string]Team `toml:"teams"`
	Markers  []Marker        `toml:"markers"`
}

type Size struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Pen struct {
	Color        string  `toml:"color"`
	Thickness    float64 `toml:"thickness"`
	MinThickness float64 `toml:"min_thickness"`
	MaxThickness float64 `toml:"max_thickness"`
}

type Eraser struct {
	Radius float64 `toml:"radius"`
}

type Team struct {
	Color string `toml:"color"`
}

// Marker is a player marker's starting position, its top-left corner in
// field coordinates.
type Marker struct {
	Label string  `toml:"label"`
	Team  string  `toml:"team"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
}

// MarkerSize is the side length of a marker on the field.
const MarkerSize = 30.0

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Window:   Size{Width: 1100, Height: 760},
		Field:    Size{Width: 1000, Height: 640},
		Pen: Pen{
			Color:        "#d62828",
			Thickness:    4,
			MinThickness: 1,
			MaxThickness: 40,
		},
		Eraser:  Eraser{Radius: 10},
		Palette: []string{"#000000", "#d62828", "#1d4ed8", "#15803d", "#facc15", "#ffffff"},
		Teams: map[string]Team{
			"home": {Color: "#1d4ed8"},
			"away": {Color: "#d62828"},
		},
		Markers: DefaultMarkers(1000, 640),
	}
}

// formation is a 4-4-2 for the home side as fractions of the field, goal on
// the left.
var formation = [][2]float64{
	{0.04, 0.50},
	{0.18, 0.15}, {0.16, 0.38}, {0.16, 0.62}, {0.18, 0.85},
	{0.32, 0.15}, {0.30, 0.38}, {0.30, 0.62}, {0.32, 0.85},
	{0.43, 0.40}, {0.43, 0.60},
}

// DefaultMarkers lays out two teams of eleven in mirrored formations.
func DefaultMarkers(fieldW, fieldH float64) []Marker {
	out := make([]Marker, 0, 2*len(formation))
	for i, f := range formation {
		out = append(out, Marker{
			Label: fmt.Sprint(i + 1),
			Team:  "home",
			X:     f[0]*fieldW - MarkerSize/2,
			Y:     f[1]*fieldH - MarkerSize/2,
		})
	}
	for i, f := range formation {
		out = append(out, Marker{
			Label: fmt.Sprint(i + 1),
			Team:  "away",
			X:     (1-f[0])*fieldW - MarkerSize/2,
			Y:     f[1]*fieldH - MarkerSize/2,
		})
	}
	return out
}

// Load reads a TOML file over the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalidConfig)
	}
	if !md.IsDefined("markers") {
		cfg.Markers = DefaultMarkers(cfg.Field.Width, cfg.Field.Height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if _, err := c.SlogLevel(); err != nil {
		bad("log_level: %v", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %gx%g must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		bad("field size %gx%g must be positive", c.Field.Width, c.Field.Height)
	}
	if _, err := render.ParseColor(c.Pen.Color); err != nil {
		bad("pen.color: %v", err)
	}
	// The size slider spans [min_thickness, max_thickness] for both tools.
	sizeRange := c.Pen.MinThickness > 0 && c.Pen.MaxThickness >= c.Pen.MinThickness
	inRange := func(v float64) bool { return v >= c.Pen.MinThickness && v <= c.Pen.MaxThickness }
	if !sizeRange {
		bad("pen thickness range [%g, %g]", c.Pen.MinThickness, c.Pen.MaxThickness)
	} else if !inRange(c.Pen.Thickness) {
		bad("pen.thickness %g outside [%g, %g]", c.Pen.Thickness, c.Pen.MinThickness, c.Pen.MaxThickness)
	}
	if c.Eraser.Radius <= 0 {
		bad("eraser.radius %g must be positive", c.Eraser.Radius)
	} else if sizeRange && !inRange(c.Eraser.Radius) {
		bad("eraser.radius %g outside [%g, %g]", c.Eraser.Radius, c.Pen.MinThickness, c.Pen.MaxThickness)
	}
	if len(c.Palette) == 0 {
		bad("palette is empty")
	}
	for i, p := range c.Palette {
		if _, err := render.ParseColor(p); err != nil {
			bad("palette[%d]: %v", i, err)
		}
	}
	for name, t := range c.Teams {
		if _, err := render.ParseColor(t.Color); err != nil {
			bad("teams.%s.color: %v", name, err)
		}
	}
	for i, m := range c.Markers {
		if _, ok := c.Teams[m.Team]; !ok {
			bad("markers[%d]: unknown team %q", i, m.Team)
		}
	}
	return errors.Join(errs...)
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, err
	}
	return l, nil
}
