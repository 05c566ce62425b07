package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

var (
	grassDark  = color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	grassLight = color.NRGBA{R: 0x38, G: 0x8e, B: 0x3c, A: 0xff}
	lineColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xd0}
)

const (
	pitchStripes = 10
	pitchLine    = 2
)

// newPitch draws football pitch markings scaled to size. Proportions follow
// a 105x68 pitch.
func newPitch(size fyne.Size) *fyne.Container {
	w, h := size.Width, size.Height
	sx, sy := w/105, h/68

	objects := make([]fyne.CanvasObject, 0, pitchStripes+12)
	stripe := w / pitchStripes
	for i := 0; i < pitchStripes; i++ {
		c := grassDark
		if i%2 == 1 {
			c = grassLight
		}
		objects = append(objects, place(canvas.NewRectangle(c), float32(i)*stripe, 0, stripe+1, h))
	}

	objects = append(objects,
		outline(0, 0, w, h),
		line(w/2, 0, w/2, h),
		circle(w/2, h/2, 9.15*sx, 9.15*sy),
		dot(w/2, h/2),
	)

	// Penalty and goal areas on both ends.
	boxW, boxH := 16.5*sx, 40.3*sy
	goalW, goalH := 5.5*sx, 18.3*sy
	objects = append(objects,
		outline(0, (h-boxH)/2, boxW, boxH),
		outline(w-boxW, (h-boxH)/2, boxW, boxH),
		outline(0, (h-goalH)/2, goalW, goalH),
		outline(w-goalW, (h-goalH)/2, goalW, goalH),
		dot(11*sx, h/2),
		dot(w-11*sx, h/2),
	)

	return container.NewWithoutLayout(objects...)
}

func place(o fyne.CanvasObject, x, y, w, h float32) fyne.CanvasObject {
	o.Move(fyne.NewPos(x, y))
	o.Resize(fyne.NewSize(w, h))
	return o
}

func outline(x, y, w, h float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.StrokeColor = lineColor
	r.StrokeWidth = pitchLine
	return place(r, x, y, w, h)
}

func line(x1, y1, x2, y2 float32) fyne.CanvasObject {
	l := canvas.NewLine(lineColor)
	l.StrokeWidth = pitchLine
	l.Position1 = fyne.NewPos(x1, y1)
	l.Position2 = fyne.NewPos(x2, y2)
	return l
}

func circle(cx, cy, rx, ry float32) fyne.CanvasObject {
	c := canvas.NewCircle(color.Transparent)
	c.StrokeColor = lineColor
	c.StrokeWidth = pitchLine
	return place(c, cx-rx, cy-ry, 2*rx, 2*ry)
}

func dot(cx, cy float32) fyne.CanvasObject {
	c := canvas.NewCircle(lineColor)
	return place(c, cx-3, cy-3, 6, 6)
}
