package state

import "log/slog"

// Scene is the ordered list of strokes on the board. Order is paint order:
// later strokes draw on top and win hit-tests. At most one stroke is open
// (still receiving points) at a time.
// The zero value is an empty scene ready to use.
type Scene struct {
	strokes []Stroke
	open    int // index+1 of the open stroke, 0 when none
}

func NewScene() *Scene {
	return &Scene{}
}

// Append adds a sealed stroke on top of the scene.
func (sc *Scene) Append(s Stroke) {
	sc.strokes = append(sc.strokes, s.clone())
}

// Begin adds s on top of the scene and makes it the open stroke. Any stroke
// left open by an earlier gesture is sealed first.
func (sc *Scene) Begin(s Stroke) {
	sc.Seal()
	sc.Append(s)
	sc.open = len(sc.strokes)
	Logger().Debug("stroke begun", slog.String("id", s.ID), slog.Int("strokes", len(sc.strokes)))
}

// Extend appends p to the open stroke. It reports false when no stroke is open.
func (sc *Scene) Extend(p Point) bool {
	if sc.open == 0 {
		return false
	}
	s := &sc.strokes[sc.open-1]
	s.Points = append(s.Points, p)
	return true
}

// Seal closes the open stroke, if any.
func (sc *Scene) Seal() {
	if sc.open == 0 {
		return
	}
	s := sc.strokes[sc.open-1]
	Logger().Debug("stroke sealed", slog.String("id", s.ID), slog.Int("points", len(s.Points)))
	sc.open = 0
}

// Open returns the index of the open stroke.
func (sc *Scene) Open() (int, bool) {
	return sc.open - 1, sc.open > 0
}

// RemoveAt deletes the stroke at index i. An out of range index is ignored.
func (sc *Scene) RemoveAt(i int) bool {
	if i < 0 || i >= len(sc.strokes) {
		return false
	}
	id := sc.strokes[i].ID
	sc.strokes = append(sc.strokes[:i], sc.strokes[i+1:]...)
	switch {
	case sc.open == i+1:
		sc.open = 0
	case sc.open > i+1:
		sc.open--
	}
	Logger().Debug("stroke removed", slog.String("id", id), slog.Int("strokes", len(sc.strokes)))
	return true
}

// Clear removes every stroke.
func (sc *Scene) Clear() {
	sc.strokes = nil
	sc.open = 0
}

func (sc *Scene) Len() int {
	return len(sc.strokes)
}

// At returns a copy of the stroke at index i.
func (sc *Scene) At(i int) (Stroke, bool) {
	if i < 0 || i >= len(sc.strokes) {
		return Stroke{}, false
	}
	return sc.strokes[i].clone(), true
}

// All returns a copy of every stroke in paint order.
func (sc *Scene) All() []Stroke {
	out := make([]Stroke, len(sc.strokes))
	for i, s := range sc.strokes {
		out[i] = s.clone()
	}
	return out
}
