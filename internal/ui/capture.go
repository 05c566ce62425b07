package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"TacticalBoard/internal/state"
	"TacticalBoard/internal/tool"
)

// captureLayer is a transparent widget over the whole field that turns
// pointer input into tool events. It is hidden while no tool is armed so
// drags reach the markers below.
type captureLayer struct {
	widget.BaseWidget
	board *BoardWidget
}

var (
	_ desktop.Mouseable = (*captureLayer)(nil)
	_ desktop.Hoverable = (*captureLayer)(nil)
	_ fyne.Draggable    = (*captureLayer)(nil)
	_ mobile.Touchable  = (*captureLayer)(nil)
)

func newCaptureLayer(b *BoardWidget) *captureLayer {
	c := &captureLayer{board: b}
	c.ExtendBaseWidget(c)
	return c
}

// SetCaptureEnabled shows or hides the layer.
func (c *captureLayer) SetCaptureEnabled(enabled bool) {
	if enabled {
		c.Show()
	} else {
		c.Hide()
	}
}

func (c *captureLayer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (c *captureLayer) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.board.dispatch(tool.MouseEvent(tool.Press, toPoint(e.Position)))
}

func (c *captureLayer) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.board.dispatch(tool.Event{Kind: tool.Release})
}

func (c *captureLayer) Dragged(e *fyne.DragEvent) {
	c.board.dispatch(tool.MouseEvent(tool.Move, toPoint(e.Position)))
}

func (c *captureLayer) DragEnd() {
	c.board.dispatch(tool.Event{Kind: tool.Release})
}

func (c *captureLayer) MouseIn(*desktop.MouseEvent)    {}
func (c *captureLayer) MouseMoved(*desktop.MouseEvent) {}

func (c *captureLayer) MouseOut() {
	c.board.dispatch(tool.Event{Kind: tool.Leave})
}

func (c *captureLayer) TouchDown(e *mobile.TouchEvent) {
	c.board.dispatch(tool.TouchEvent(tool.Press, toPoint(e.Position)))
}

func (c *captureLayer) TouchUp(*mobile.TouchEvent) {
	c.board.dispatch(tool.TouchEvent(tool.Release))
}

func (c *captureLayer) TouchCancel(*mobile.TouchEvent) {
	c.board.dispatch(tool.TouchEvent(tool.Release))
}
