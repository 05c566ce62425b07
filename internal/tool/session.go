// Package tool turns pointer and keyboard input into scene edits.
package tool

import (
	"errors"
	"fmt"
	"log/slog"

	"TacticalBoard/internal/state"
)

// ErrReentrant is returned when an event or a mode, scene or surface change
// arrives while a repaint is still running, for example from a repaint
// callback.
var ErrReentrant = errors.New("event during repaint")

// minThickness replaces a non-positive pen thickness.
const minThickness = 1.0

// Painter repaints the scene onto the drawing surface.
type Painter interface {
	ConfigureForSurface(logicalWidth, logicalHeight, devicePixelRatio float64) error
	RepaintAll(sc *state.Scene) error
}

// CaptureToggler switches pointer capture on the drawing surface. While
// capture is off, pointer events pass through to whatever lies beneath.
type CaptureToggler interface {
	SetCaptureEnabled(enabled bool)
}

// Session holds the annotation state for one board: the scene, the active
// mode and the gesture in progress. All methods must be called from the
// goroutine that delivers input events.
type Session struct {
	scene    *state.Scene
	painter  Painter
	settings Settings
	capture  CaptureToggler

	mode     Mode
	drawing  bool
	painting bool

	// OnRepaint runs after every successful repaint so the host can present
	// the new pixels.
	OnRepaint func()
	// OnModeChange runs after the mode changed.
	OnModeChange func(Mode)
}

// NewSession starts in idle mode with capture disabled. capture may be nil
// for hosts without a pass-through surface.
func NewSession(sc *state.Scene, painter Painter, settings Settings, capture CaptureToggler) *Session {
	s := &Session{
		scene:    sc,
		painter:  painter,
		settings: settings,
		capture:  capture,
	}
	s.setCapture(false)
	return s
}

func (s *Session) Scene() *state.Scene { return s.scene }
func (s *Session) Mode() Mode          { return s.mode }

// Drawing reports whether a gesture is between press and release.
func (s *Session) Drawing() bool { return s.drawing }

// SetMode switches the active tool. Any gesture in progress ends: a leftover
// open stroke is sealed and no further moves extend it. A switch requested
// while a repaint runs is refused and leaves the mode unchanged.
func (s *Session) SetMode(m Mode) error {
	if s.painting {
		state.Logger().Warn("mode change during repaint refused", slog.String("to", m.String()))
		return ErrReentrant
	}
	s.scene.Seal()
	s.drawing = false
	prev := s.mode
	s.mode = m
	s.setCapture(m.Armed())
	state.Logger().Info("mode changed", slog.String("from", prev.String()), slog.String("to", m.String()))
	if s.OnModeChange != nil {
		s.OnModeChange(m)
	}
	return nil
}

// Clear removes every stroke and repaints.
func (s *Session) Clear() error {
	if s.painting {
		return ErrReentrant
	}
	n := s.scene.Len()
	s.scene.Clear()
	state.Logger().Info("scene cleared", slog.Int("removed", n))
	return s.repaint()
}

// ResizeSurface reconfigures the drawing buffer for a new surface size and
// repaints, since resizing drops the old pixels.
func (s *Session) ResizeSurface(logicalWidth, logicalHeight, devicePixelRatio float64) error {
	if s.painting {
		return ErrReentrant
	}
	if err := s.painter.ConfigureForSurface(logicalWidth, logicalHeight, devicePixelRatio); err != nil {
		return err
	}
	return s.repaint()
}

// Repaint redraws the scene without changing it.
func (s *Session) Repaint() error {
	if s.painting {
		return ErrReentrant
	}
	return s.repaint()
}

func (s *Session) repaint() error {
	s.painting = true
	defer func() { s.painting = false }()

	if err := s.painter.RepaintAll(s.scene); err != nil {
		return fmt.Errorf("repaint: %w", err)
	}
	if s.OnRepaint != nil {
		s.OnRepaint()
	}
	return nil
}

func (s *Session) setCapture(enabled bool) {
	if s.capture != nil {
		s.capture.SetCaptureEnabled(enabled)
	}
}
