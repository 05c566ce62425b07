package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TacticalBoard/internal/state"
)

// recordingCanvas logs every command as text so tests can assert on the
// exact drawing sequence.
type recordingCanvas struct {
	w, h      int
	transform gg.Matrix
	cmds      []string
	resizeErr error
}

func (c *recordingCanvas) Resize(w, h int) error {
	if c.resizeErr != nil {
		return c.resizeErr
	}
	c.w, c.h = w, h
	c.cmds = append(c.cmds, fmt.Sprintf("resize %d %d", w, h))
	return nil
}
func (c *recordingCanvas) SetTransform(m gg.Matrix) { c.transform = m }
func (c *recordingCanvas) Clear()                   { c.cmds = append(c.cmds, "clear") }
func (c *recordingCanvas) SetColor(col color.Color) {
	r, g, b, a := col.RGBA()
	c.cmds = append(c.cmds, fmt.Sprintf("color %02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8))
}
func (c *recordingCanvas) SetLineWidth(w float64) {
	c.cmds = append(c.cmds, fmt.Sprintf("width %g", w))
}
func (c *recordingCanvas) SetLineCap(lc gg.LineCap) {
	c.cmds = append(c.cmds, fmt.Sprintf("cap %d", lc))
}
func (c *recordingCanvas) SetLineJoin(j gg.LineJoin) {
	c.cmds = append(c.cmds, fmt.Sprintf("join %d", j))
}
func (c *recordingCanvas) MoveTo(x, y float64) {
	c.cmds = append(c.cmds, fmt.Sprintf("move %g %g", x, y))
}
func (c *recordingCanvas) LineTo(x, y float64) {
	c.cmds = append(c.cmds, fmt.Sprintf("line %g %g", x, y))
}
func (c *recordingCanvas) DrawCircle(x, y, r float64) {
	c.cmds = append(c.cmds, fmt.Sprintf("circle %g %g %g", x, y, r))
}
func (c *recordingCanvas) Fill() error   { c.cmds = append(c.cmds, "fill"); return nil }
func (c *recordingCanvas) Stroke() error { c.cmds = append(c.cmds, "stroke"); return nil }
func (c *recordingCanvas) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, c.w, c.h))
}

func newRecordingRenderer(t *testing.T) (*Renderer, *recordingCanvas) {
	t.Helper()
	rc := &recordingCanvas{}
	r := New(WithCanvasFactory(func(w, h int) Canvas {
		rc.w, rc.h = w, h
		return rc
	}))
	require.NoError(t, r.ConfigureForSurface(100, 50, 2))
	rc.cmds = nil
	return r, rc
}

func TestConfigureForSurfaceMapsRatio(t *testing.T) {
	rc := &recordingCanvas{}
	r := New(WithCanvasFactory(func(w, h int) Canvas {
		rc.w, rc.h = w, h
		return rc
	}))

	require.NoError(t, r.ConfigureForSurface(100.7, 50.2, 1.5))
	w, h := r.PhysicalSize()
	assert.Equal(t, 151, w)
	assert.Equal(t, 75, h)
	assert.Equal(t, gg.Scale(1.5, 1.5), rc.transform)
	assert.Equal(t, 1.5, r.Ratio())

	require.NoError(t, r.ConfigureForSurface(200, 100, 2))
	assert.Contains(t, rc.cmds, "resize 400 200")
	assert.Equal(t, gg.Scale(2, 2), rc.transform)
	assert.Equal(t, 2.0, r.Ratio())
}

func TestConfigureForSurfaceRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name     string
		w, h, dp float64
	}{
		{"zero width", 0, 10, 1},
		{"negative height", 10, -1, 1},
		{"zero ratio", 10, 10, 0},
		{"nan ratio", 10, 10, math.NaN()},
		{"inf width", math.Inf(1), 10, 1},
		{"rounds to nothing", 0.4, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			err := r.ConfigureForSurface(tt.w, tt.h, tt.dp)
			assert.ErrorIs(t, err, ErrSurfaceUnavailable)
			assert.Nil(t, r.Image())
		})
	}
}

func TestConfigureForSurfaceResizeFailure(t *testing.T) {
	r, rc := newRecordingRenderer(t)
	rc.resizeErr = errors.New("boom")
	assert.ErrorIs(t, r.ConfigureForSurface(10, 10, 1), ErrSurfaceUnavailable)
}

func TestRepaintAllBeforeConfigure(t *testing.T) {
	r := New()
	assert.ErrorIs(t, r.RepaintAll(state.NewScene()), ErrSurfaceUnavailable)
	assert.Nil(t, r.Image())
}

func TestRepaintAllPolylineRoundTrip(t *testing.T) {
	r, rc := newRecordingRenderer(t)
	sc := state.NewScene()
	s := state.NewStroke("#ff0000", 4, state.Point{X: 0, Y: 0})
	s.Points = append(s.Points, state.Point{X: 10, Y: 0}, state.Point{X: 10, Y: 10})
	sc.Append(s)

	require.NoError(t, r.RepaintAll(sc))
	assert.Equal(t, []string{
		"clear",
		"color ff0000ff",
		"width 4",
		fmt.Sprintf("cap %d", gg.LineCapRound),
		fmt.Sprintf("join %d", gg.LineJoinRound),
		"move 0 0",
		"line 10 0",
		"line 10 10",
		"stroke",
	}, rc.cmds)
}

func TestRepaintAllDot(t *testing.T) {
	r, rc := newRecordingRenderer(t)
	sc := state.NewScene()
	sc.Append(state.NewStroke("blue", 6, state.Point{X: 20, Y: 30}))

	require.NoError(t, r.RepaintAll(sc))
	assert.Equal(t, []string{"clear", "color 0000ffff", "circle 20 30 3", "fill"}, rc.cmds)
}

func TestRepaintAllOrderAndUnknownColor(t *testing.T) {
	r, rc := newRecordingRenderer(t)
	sc := state.NewScene()
	sc.Append(state.NewStroke("#00ff00", 2, state.Point{X: 1, Y: 1}))
	sc.Append(state.NewStroke("not-a-color", 2, state.Point{X: 2, Y: 2}))

	require.NoError(t, r.RepaintAll(sc))
	assert.Equal(t, []string{
		"clear",
		"color 00ff00ff", "circle 1 1 1", "fill",
		"color 000000ff", "circle 2 2 1", "fill",
	}, rc.cmds)
}

func TestRepaintIsIdempotent(t *testing.T) {
	r := New()
	require.NoError(t, r.ConfigureForSurface(64, 48, 2))

	sc := state.NewScene()
	line := state.NewStroke("#1d4ed8", 5, state.Point{X: 4, Y: 4})
	line.Points = append(line.Points, state.Point{X: 40, Y: 10}, state.Point{X: 30, Y: 40})
	sc.Append(line)
	sc.Append(state.NewStroke("#d62828", 8, state.Point{X: 50, Y: 30}))

	require.NoError(t, r.RepaintAll(sc))
	first := rgbaPix(t, r.Image())
	require.NoError(t, r.RepaintAll(sc))
	second := rgbaPix(t, r.Image())

	assert.Equal(t, first, second)
	assert.NotEqual(t, make([]uint8, len(first)), first, "something was drawn")
}

func TestRepaintPaintsInDevicePixels(t *testing.T) {
	r := New()
	require.NoError(t, r.ConfigureForSurface(40, 40, 2))

	sc := state.NewScene()
	sc.Append(state.NewStroke("#ff0000", 10, state.Point{X: 10, Y: 10}))
	require.NoError(t, r.RepaintAll(sc))

	img := r.Image()
	assert.Equal(t, image.Rect(0, 0, 80, 80), img.Bounds())
	// Logical (10,10) lands on physical (20,20); the dot has a physical radius of 10.
	_, _, _, a := img.At(20, 20).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(60, 60).RGBA()
	assert.Zero(t, a)
}

func TestRepaintAfterClearIsBlank(t *testing.T) {
	r := New()
	require.NoError(t, r.ConfigureForSurface(32, 32, 1))

	sc := state.NewScene()
	s := state.NewStroke("#000000", 6, state.Point{X: 2, Y: 2})
	s.Points = append(s.Points, state.Point{X: 30, Y: 30})
	sc.Append(s)
	require.NoError(t, r.RepaintAll(sc))

	sc.Clear()
	require.NoError(t, r.RepaintAll(sc))
	pix := rgbaPix(t, r.Image())
	assert.Equal(t, make([]uint8, len(pix)), pix)
}

func rgbaPix(t *testing.T, img image.Image) []uint8 {
	t.Helper()
	rgba, ok := img.(*image.RGBA)
	require.True(t, ok, "unexpected image type %T", img)
	return rgba.Pix
}
