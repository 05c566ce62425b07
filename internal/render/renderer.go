// Package render paints a stroke scene into a device-pixel buffer.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"TacticalBoard/internal/state"
)

// ErrSurfaceUnavailable is returned when no drawing buffer can be set up for
// the requested surface. The board cannot work without one.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Canvas is the subset of a 2D drawing context the renderer issues commands
// to. *gg.Context implements it.
type Canvas interface {
	Resize(width, height int) error
	SetTransform(m gg.Matrix)
	Clear()
	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	SetLineJoin(join gg.LineJoin)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawCircle(x, y, r float64)
	Fill() error
	Stroke() error
	Image() image.Image
}

// CanvasFactory allocates a canvas with the given physical size in pixels.
type CanvasFactory func(width, height int) Canvas

func newGGCanvas(width, height int) Canvas {
	return gg.NewContext(width, height)
}

// Renderer repaints a whole scene from scratch on every call. Drawing
// commands are issued in logical units; the configured transform maps them
// onto physical pixels.
type Renderer struct {
	newCanvas CanvasFactory
	canvas    Canvas

	ratio        float64
	physW, physH int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCanvasFactory replaces the default gg software canvas.
func WithCanvasFactory(f CanvasFactory) Option {
	return func(r *Renderer) { r.newCanvas = f }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{newCanvas: newGGCanvas}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ConfigureForSurface sizes the pixel buffer for a surface of the given
// logical size at devicePixelRatio physical pixels per logical unit. The
// buffer is cleared, so callers repaint afterward.
func (r *Renderer) ConfigureForSurface(logicalWidth, logicalHeight, devicePixelRatio float64) error {
	if !positive(logicalWidth) || !positive(logicalHeight) || !positive(devicePixelRatio) {
		return fmt.Errorf("configure %gx%g@%g: %w", logicalWidth, logicalHeight, devicePixelRatio, ErrSurfaceUnavailable)
	}
	pw := int(math.Floor(logicalWidth * devicePixelRatio))
	ph := int(math.Floor(logicalHeight * devicePixelRatio))
	if pw <= 0 || ph <= 0 {
		return fmt.Errorf("configure %gx%g@%g: empty pixel buffer: %w", logicalWidth, logicalHeight, devicePixelRatio, ErrSurfaceUnavailable)
	}

	if r.canvas == nil {
		r.canvas = r.newCanvas(pw, ph)
		if r.canvas == nil {
			return fmt.Errorf("configure %dx%d: no canvas: %w", pw, ph, ErrSurfaceUnavailable)
		}
	} else if err := r.canvas.Resize(pw, ph); err != nil {
		return fmt.Errorf("resize %dx%d: %v: %w", pw, ph, err, ErrSurfaceUnavailable)
	}
	r.canvas.SetTransform(gg.Scale(devicePixelRatio, devicePixelRatio))
	r.canvas.Clear()

	r.ratio = devicePixelRatio
	r.physW, r.physH = pw, ph
	state.Logger().Debug("surface configured",
		slog.Float64("width", logicalWidth),
		slog.Float64("height", logicalHeight),
		slog.Float64("ratio", devicePixelRatio),
		slog.Int("pixels_w", pw),
		slog.Int("pixels_h", ph))
	return nil
}

// PhysicalSize is the pixel buffer size.
func (r *Renderer) PhysicalSize() (int, int) {
	return r.physW, r.physH
}

// Ratio is the current device pixel ratio.
func (r *Renderer) Ratio() float64 {
	return r.ratio
}

// RepaintAll clears the surface and draws every stroke of sc in order.
func (r *Renderer) RepaintAll(sc *state.Scene) error {
	if r.canvas == nil {
		return fmt.Errorf("repaint: %w", ErrSurfaceUnavailable)
	}
	r.canvas.Clear()

	strokes := sc.All()
	badColors := 0
	for _, s := range strokes {
		c, err := ParseColor(s.Color)
		if err != nil {
			badColors++
			c = color.NRGBA{A: 0xff}
		}
		if err := r.paintStroke(s, c); err != nil {
			return fmt.Errorf("repaint stroke %s: %w", s.ID, err)
		}
	}
	if badColors > 0 {
		state.Logger().Warn("strokes with unknown color painted black", slog.Int("count", badColors))
	}
	state.Logger().Debug("repainted", slog.Int("strokes", len(strokes)))
	return nil
}

func (r *Renderer) paintStroke(s state.Stroke, c color.Color) error {
	if len(s.Points) == 0 || s.Kind != state.KindPen {
		return nil
	}
	r.canvas.SetColor(c)
	if s.IsDot() {
		p := s.Points[0]
		r.canvas.DrawCircle(p.X, p.Y, s.Radius())
		return r.canvas.Fill()
	}
	r.canvas.SetLineWidth(s.Thickness)
	r.canvas.SetLineCap(gg.LineCapRound)
	r.canvas.SetLineJoin(gg.LineJoinRound)
	r.canvas.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		r.canvas.LineTo(p.X, p.Y)
	}
	return r.canvas.Stroke()
}

// Image returns the current pixels. It is nil before the first
// ConfigureForSurface.
func (r *Renderer) Image() image.Image {
	if r.canvas == nil {
		return nil
	}
	return r.canvas.Image()
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
