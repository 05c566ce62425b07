package tool

import (
	"log/slog"

	"TacticalBoard/internal/state"
)

// HandleEvent applies one pointer event to the scene according to the
// active mode. In idle mode every event is ignored.
func (s *Session) HandleEvent(ev Event) error {
	if s.painting {
		state.Logger().Warn("dropped event during repaint", slog.String("kind", ev.Kind.String()))
		return ErrReentrant
	}
	if !s.mode.Armed() {
		return nil
	}

	switch ev.Kind {
	case Press:
		p, ok := ev.point()
		if !ok {
			return nil
		}
		return s.press(p)
	case Move:
		p, ok := ev.point()
		if !ok || !s.drawing {
			return nil
		}
		return s.move(p)
	case Release, Leave:
		s.end()
	}
	return nil
}

// Press, Move, Release and Leave are mouse shorthands for HandleEvent.

func (s *Session) Press(p state.Point) error { return s.HandleEvent(MouseEvent(Press, p)) }
func (s *Session) Move(p state.Point) error  { return s.HandleEvent(MouseEvent(Move, p)) }
func (s *Session) Release() error            { return s.HandleEvent(Event{Kind: Release}) }
func (s *Session) Leave() error              { return s.HandleEvent(Event{Kind: Leave}) }

func (s *Session) press(p state.Point) error {
	switch s.mode {
	case ModePen:
		thickness := s.settings.Thickness()
		if !(thickness > 0) {
			thickness = minThickness
		}
		s.scene.Begin(state.NewStroke(s.settings.Color(), thickness, p))
		s.drawing = true
		return s.repaint()
	case ModeEraser:
		// Drawing starts even on a miss so a drag keeps erasing.
		s.drawing = true
		return s.eraseAt(p)
	}
	return nil
}

func (s *Session) move(p state.Point) error {
	switch s.mode {
	case ModePen:
		if !s.scene.Extend(p) {
			return nil
		}
		return s.repaint()
	case ModeEraser:
		return s.eraseAt(p)
	}
	return nil
}

func (s *Session) end() {
	if !s.drawing {
		return
	}
	s.drawing = false
	s.scene.Seal()
}

func (s *Session) eraseAt(p state.Point) error {
	idx, ok := state.FindTopmostStrokeAt(s.scene, p, s.settings.EraserRadius())
	if !ok {
		return nil
	}
	s.scene.RemoveAt(idx)
	return s.repaint()
}
