package state

import "slices"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind is the type of a stroke. The eraser removes strokes and never
// produces one, so pen is the only kind.
type Kind string

const (
	KindPen Kind = "pen"
)

// Stroke is one continuous pen gesture.
type Stroke struct {
	ID        string
	Kind      Kind
	Color     string
	Thickness float64
	Points    []Point
}

// NewStroke starts a pen stroke at p with a fresh identity.
func NewStroke(color string, thickness float64, p Point) Stroke {
	return Stroke{
		ID:        newStrokeID(),
		Kind:      KindPen,
		Color:     color,
		Thickness: thickness,
		Points:    []Point{p},
	}
}

// IsDot reports whether the stroke is a single tap.
func (s Stroke) IsDot() bool {
	return len(s.Points) == 1
}

// Radius is half the stroke thickness.
func (s Stroke) Radius() float64 {
	return s.Thickness / 2
}

func (s Stroke) clone() Stroke {
	s.Points = slices.Clone(s.Points)
	return s
}
