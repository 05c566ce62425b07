package tool

// Settings supplies the tool values owned by the toolbar. They are read at
// the moment an operation needs them and never cached.
type Settings interface {
	Color() string
	Thickness() float64
	EraserRadius() float64
}

// StaticSettings is a fixed Settings value.
type StaticSettings struct {
	PenColor     string
	PenThickness float64
	Radius       float64
}

func (s StaticSettings) Color() string         { return s.PenColor }
func (s StaticSettings) Thickness() float64    { return s.PenThickness }
func (s StaticSettings) EraserRadius() float64 { return s.Radius }
