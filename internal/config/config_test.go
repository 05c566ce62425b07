package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Markers, 22)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
palette = ["black", "#ff0000"]

[field]
width = 500
height = 300

[pen]
color = "#00ff00"
thickness = 6

[eraser]
radius = 3

[teams.home]
color = "navy"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"black", "#ff0000"}, cfg.Palette)
	assert.Equal(t, Size{Width: 500, Height: 300}, cfg.Field)
	assert.Equal(t, "#00ff00", cfg.Pen.Color)
	assert.Equal(t, 6.0, cfg.Pen.Thickness)
	assert.Equal(t, 40.0, cfg.Pen.MaxThickness, "untouched keys keep defaults")
	assert.Equal(t, 3.0, cfg.Eraser.Radius)
	assert.Equal(t, "navy", cfg.Teams["home"].Color)
	assert.Equal(t, "#d62828", cfg.Teams["away"].Color)
	assert.Equal(t, DefaultMarkers(500, 300), cfg.Markers, "markers follow the field size")
}

func TestLoadMarkers(t *testing.T) {
	path := writeConfig(t, `
[[markers]]
label = "GK"
team = "home"
x = 10
y = 20
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Marker{{Label: "GK", Team: "home", X: 10, Y: 20}}, cfg.Markers)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "colour = \"red\"\n"},
		{"bad pen color", "[pen]\ncolor = \"bluish\"\n"},
		{"thickness out of range", "[pen]\nthickness = 100\n"},
		{"zero eraser", "[eraser]\nradius = 0\n"},
		{"eraser beyond slider", "[eraser]\nradius = 41\n"},
		{"eraser below slider", "[pen]\nmin_thickness = 5\nthickness = 6\n[eraser]\nradius = 3\n"},
		{"bad log level", "log_level = \"loud\"\n"},
		{"unknown team", "[[markers]]\nlabel = \"1\"\nteam = \"visitors\"\n"},
		{"empty palette", "palette = []\n"},
		{"negative field", "[field]\nwidth = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestEraserRadiusFollowsSliderRange(t *testing.T) {
	cfg := Default()
	cfg.Pen.MinThickness, cfg.Pen.MaxThickness = 2, 20
	cfg.Eraser.Radius = 20
	assert.NoError(t, cfg.Validate())

	cfg.Eraser.Radius = 20.5
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "eraser.radius 20.5 outside [2, 20]")
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load(writeConfig(t, "[pen\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Pen.Color = "nope"
	cfg.Eraser.Radius = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pen.color")
	assert.Contains(t, err.Error(), "eraser.radius")
}
