package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"TacticalBoard/internal/config"
	"TacticalBoard/internal/marker"
)

var markerHighlight = color.NRGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}

// markerWidget is a draggable player marker. Drags never leave the field.
type markerWidget struct {
	widget.BaseWidget

	label string
	fill  color.Color
	field fyne.Size

	circle *canvas.Circle
	drag   marker.Drag
}

var _ fyne.Draggable = (*markerWidget)(nil)

func newMarkerWidget(label string, fill color.Color, field fyne.Size) *markerWidget {
	m := &markerWidget{label: label, fill: fill, field: field}
	m.circle = canvas.NewCircle(fill)
	m.circle.StrokeColor = color.White
	m.circle.StrokeWidth = 2
	m.ExtendBaseWidget(m)
	m.Resize(m.MinSize())
	return m
}

func (m *markerWidget) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(m.label, color.White)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle.Bold = true
	text.TextSize = 12
	return widget.NewSimpleRenderer(container.NewStack(m.circle, container.NewCenter(text)))
}

func (m *markerWidget) MinSize() fyne.Size {
	return fyne.NewSize(config.MarkerSize, config.MarkerSize)
}

func (m *markerWidget) Dragged(e *fyne.DragEvent) {
	pos := m.Position()
	topLeft := marker.Point{X: float64(pos.X), Y: float64(pos.Y)}
	if !m.drag.Active() {
		// e.Position already includes the first delta; the grab point is
		// where the pointer was pressed.
		grab := marker.Point{X: float64(e.Position.X - e.Dragged.DX), Y: float64(e.Position.Y - e.Dragged.DY)}
		m.drag.BeginAt(grab, topLeft)
		m.setHighlight(true)
	}
	pointer := marker.Point{X: topLeft.X + float64(e.Position.X), Y: topLeft.Y + float64(e.Position.Y)}
	next := m.drag.Move(pointer, m.fieldSize(), m.markerSize())
	m.Move(fyne.NewPos(float32(next.X), float32(next.Y)))
}

func (m *markerWidget) DragEnd() {
	m.drag.End()
	m.setHighlight(false)
}

// clampToField pulls a marker placed by configuration back inside the field.
func (m *markerWidget) clampToField() {
	pos := m.Position()
	p := marker.FieldArea(m.fieldSize()).Clamp(marker.Point{X: float64(pos.X), Y: float64(pos.Y)}, m.markerSize())
	m.Move(fyne.NewPos(float32(p.X), float32(p.Y)))
}

func (m *markerWidget) setHighlight(on bool) {
	if on {
		m.circle.StrokeColor = markerHighlight
		m.circle.StrokeWidth = 3
	} else {
		m.circle.StrokeColor = color.White
		m.circle.StrokeWidth = 2
	}
	m.circle.Refresh()
}

func (m *markerWidget) fieldSize() marker.Size {
	return marker.Size{Width: float64(m.field.Width), Height: float64(m.field.Height)}
}

func (m *markerWidget) markerSize() marker.Size {
	s := m.MinSize()
	return marker.Size{Width: float64(s.Width), Height: float64(s.Height)}
}
