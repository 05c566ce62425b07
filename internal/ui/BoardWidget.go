package ui

import (
	"image"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"TacticalBoard/internal/config"
	"TacticalBoard/internal/render"
	"TacticalBoard/internal/state"
	"TacticalBoard/internal/tool"
)

// BoardWidget is the field with its markers and the annotation layer on top.
// Layers from bottom to top: pitch markings, ink, markers, capture layer.
type BoardWidget struct {
	widget.BaseWidget

	session    *tool.Session
	controller *tool.Controller
	renderer   *render.Renderer

	field   fyne.Size
	pitch   *fyne.Container
	ink     *canvas.Raster
	markers *fyne.Container
	capture *captureLayer

	statusBar *widget.Label

	// rasterW and rasterH are the last pixel size the ink raster asked for.
	rasterW, rasterH int
	inRaster         bool
}

var _ fyne.Widget = (*BoardWidget)(nil)

// NewBoardWidget builds a board for cfg. settings supplies pen color,
// thickness and eraser radius at the moment each operation runs.
func NewBoardWidget(cfg *config.Config, settings tool.Settings) *BoardWidget {
	b := &BoardWidget{
		renderer:  render.New(),
		field:     fyne.NewSize(float32(cfg.Field.Width), float32(cfg.Field.Height)),
		statusBar: widget.NewLabel("Ready"),
	}
	b.capture = newCaptureLayer(b)
	b.session = tool.NewSession(state.NewScene(), b.renderer, settings, b.capture)
	b.controller = tool.NewController(b.session)

	b.ink = canvas.NewRaster(b.inkImage)
	b.session.OnRepaint = b.refreshInk

	b.pitch = newPitch(b.field)
	b.markers = container.NewWithoutLayout()
	for _, m := range cfg.Markers {
		fill, err := render.ParseColor(cfg.Teams[m.Team].Color)
		if err != nil {
			fill = color.NRGBA{A: 0xff}
		}
		mw := newMarkerWidget(m.Label, fill, b.field)
		mw.Move(fyne.NewPos(float32(m.X), float32(m.Y)))
		mw.clampToField()
		b.markers.Add(mw)
	}

	b.ExtendBaseWidget(b)
	return b
}

// Init sets up the drawing buffer at the field size, one pixel per unit
// until the ink raster reports the real pixel size. The board cannot draw
// without it, so an error here is fatal for the caller.
func (b *BoardWidget) Init() error {
	return b.session.ResizeSurface(float64(b.field.Width), float64(b.field.Height), 1)
}

func (b *BoardWidget) Session() *tool.Session       { return b.session }
func (b *BoardWidget) Controller() *tool.Controller { return b.controller }
func (b *BoardWidget) StatusBar() *widget.Label     { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) dispatch(ev tool.Event) {
	if err := b.session.HandleEvent(ev); err != nil {
		b.report("input", err)
	}
}

func (b *BoardWidget) report(op string, err error) {
	state.Logger().Error(op+" failed", slog.Any("err", err))
	b.SetStatus("Error: " + err.Error())
}

// inkImage generates the ink raster. Fyne asks for the field in device
// pixels, texture scale included, so the surface ratio comes from w.
func (b *BoardWidget) inkImage(w, h int) image.Image {
	b.inRaster = true
	defer func() { b.inRaster = false }()

	b.matchPixels(w, h)
	if img := b.renderer.Image(); img != nil {
		return img
	}
	return image.NewNRGBA(image.Rect(0, 0, 1, 1))
}

// matchPixels reconfigures the surface when the raster asks for a pixel size
// other than the buffer's. A size that the flooring in the renderer cannot
// hit exactly is tried once, not on every frame.
func (b *BoardWidget) matchPixels(w, h int) {
	if w <= 0 || h <= 0 || b.field.Width <= 0 {
		return
	}
	if pw, ph := b.renderer.PhysicalSize(); pw == w && ph == h {
		return
	}
	if w == b.rasterW && h == b.rasterH {
		return
	}
	b.rasterW, b.rasterH = w, h

	ratio := float64(w) / float64(b.field.Width)
	if err := b.session.ResizeSurface(float64(b.field.Width), float64(b.field.Height), ratio); err != nil {
		b.report("resize", err)
		return
	}
	state.Logger().Debug("ink surface rescaled",
		slog.Int("pixels_w", w),
		slog.Int("pixels_h", h),
		slog.Float64("ratio", b.renderer.Ratio()))
}

// refreshInk presents a repaint. A repaint made while generating the raster
// is already in the image being returned.
func (b *BoardWidget) refreshInk() {
	if !b.inRaster {
		b.ink.Refresh()
	}
}

func (b *BoardWidget) MinSize() fyne.Size {
	b.ExtendBaseWidget(b)
	return b.field
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	b := r.board
	return []fyne.CanvasObject{b.pitch, b.ink, b.markers, b.capture}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	b := r.board
	// The field keeps its configured size; a larger widget just shows margin.
	for _, o := range r.Objects() {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(b.field)
	}
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.field
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.ink.Refresh()
	r.board.markers.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
