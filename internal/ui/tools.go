package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"TacticalBoard/internal/config"
	"TacticalBoard/internal/render"
	"TacticalBoard/internal/tool"
)

// colorSwatch is a tappable color chip. The selected swatch has a heavier
// border.
type colorSwatch struct {
	widget.BaseWidget
	Value    string
	OnTapped func(string)

	fill   color.Color
	border *canvas.Rectangle
}

func newColorSwatch(value string, fill color.Color, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Value: value, OnTapped: tapped, fill: fill}
	s.border = canvas.NewRectangle(color.Transparent)
	s.border.StrokeColor = color.Gray{Y: 150}
	s.border.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.fill)
	rect.SetMinSize(fyne.NewSize(28, 28))
	return widget.NewSimpleRenderer(container.NewStack(rect, s.border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Value)
	}
}

func (s *colorSwatch) setSelected(on bool) {
	if on {
		s.border.StrokeColor = color.Black
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = color.Gray{Y: 150}
		s.border.StrokeWidth = 1
	}
	s.border.Refresh()
}

// Toolbar holds the tool buttons, the palette and the size slider. It is
// also the tool.Settings the session reads on every press and erase, so a
// change applies to the next stroke without touching strokes already drawn.
//
// The slider edits the pen thickness while the pen or nothing is active and
// the eraser radius while the eraser is active.
type Toolbar struct {
	color        string
	penSize      float64
	eraserRadius float64
	editing      tool.Mode

	controller *tool.Controller
	onError    func(op string, err error)

	penBtn    *widget.Button
	eraserBtn *widget.Button
	doneBtn   *widget.Button
	clearBtn  *widget.Button
	swatches  []*colorSwatch
	slider    *widget.Slider
	sizeLabel *widget.Label

	obj fyne.CanvasObject
}

var _ tool.Settings = (*Toolbar)(nil)

func NewToolbar(cfg *config.Config) *Toolbar {
	t := &Toolbar{
		color:        cfg.Pen.Color,
		penSize:      cfg.Pen.Thickness,
		eraserRadius: cfg.Eraser.Radius,
	}

	t.penBtn = widget.NewButton(buttonLabel("p"), func() { t.run((*tool.Controller).SelectPen) })
	t.eraserBtn = widget.NewButton(buttonLabel("e"), func() { t.run((*tool.Controller).SelectEraser) })
	t.doneBtn = widget.NewButton(buttonLabel("escape"), func() { t.run((*tool.Controller).SelectIdle) })
	t.clearBtn = widget.NewButton(buttonLabel("c"), func() { t.run((*tool.Controller).Clear) })

	palette := container.NewHBox()
	for _, value := range cfg.Palette {
		fill, err := render.ParseColor(value)
		if err != nil {
			continue
		}
		sw := newColorSwatch(value, fill, t.selectColor)
		t.swatches = append(t.swatches, sw)
		palette.Add(sw)
	}
	t.markSwatch()

	t.slider = widget.NewSlider(cfg.Pen.MinThickness, cfg.Pen.MaxThickness)
	t.slider.Step = 1
	t.slider.Value = t.penSize
	t.slider.OnChanged = t.setSize
	t.sizeLabel = widget.NewLabel("")
	t.updateSizeLabel()
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.slider)

	t.obj = container.NewHBox(
		widget.NewLabel("Tool:"),
		t.penBtn, t.eraserBtn, t.doneBtn, t.clearBtn,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		palette,
		widget.NewSeparator(),
		t.sizeLabel,
		sliderBox,
		layout.NewSpacer(),
	)
	t.SetMode(tool.ModeIdle)
	return t
}

// Bind connects the buttons to ctl. onError receives failures from the buttons.
func (t *Toolbar) Bind(ctl *tool.Controller, onError func(op string, err error)) {
	t.controller = ctl
	t.onError = onError
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.obj }

func (t *Toolbar) Color() string         { return t.color }
func (t *Toolbar) Thickness() float64    { return t.penSize }
func (t *Toolbar) EraserRadius() float64 { return t.eraserRadius }

// SetMode highlights the active tool and points the slider at its size.
func (t *Toolbar) SetMode(m tool.Mode) {
	set := func(b *widget.Button, on bool) {
		if on {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.MediumImportance
		}
		b.Refresh()
	}
	set(t.penBtn, m == tool.ModePen)
	set(t.eraserBtn, m == tool.ModeEraser)
	set(t.doneBtn, m == tool.ModeIdle)

	t.editing = m
	if m == tool.ModeEraser {
		t.slider.Value = t.eraserRadius
	} else {
		t.slider.Value = t.penSize
	}
	t.slider.Refresh()
	t.updateSizeLabel()
}

func (t *Toolbar) run(fn func(*tool.Controller) error) {
	if t.controller == nil {
		return
	}
	if err := fn(t.controller); err != nil && t.onError != nil {
		t.onError("toolbar", err)
	}
}

func (t *Toolbar) selectColor(value string) {
	t.color = value
	t.markSwatch()
}

func (t *Toolbar) markSwatch() {
	for _, sw := range t.swatches {
		sw.setSelected(strings.EqualFold(sw.Value, t.color))
	}
}

func (t *Toolbar) setSize(v float64) {
	if t.editing == tool.ModeEraser {
		t.eraserRadius = v
	} else {
		t.penSize = v
	}
	t.updateSizeLabel()
}

func (t *Toolbar) updateSizeLabel() {
	if t.editing == tool.ModeEraser {
		t.sizeLabel.SetText("Radius:")
	} else {
		t.sizeLabel.SetText("Size:")
	}
}

// buttonLabel names a tool button after its shortcut, e.g. "Pen (P)".
func buttonLabel(key string) string {
	for _, s := range tool.Shortcuts() {
		if s.Key == key {
			short := strings.ToUpper(s.Key)
			if s.Key == "escape" {
				short = "Esc"
			}
			return s.Label + " (" + short + ")"
		}
	}
	return key
}
