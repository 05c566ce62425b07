package marker

import (
	"log/slog"

	"TacticalBoard/internal/state"
)

// Drag tracks one marker drag. The grab offset keeps the marker from
// jumping under the pointer when the drag starts.
type Drag struct {
	offset Point
	pos    Point
	active bool
}

// Begin starts a drag of a marker whose top-left corner is at topLeft,
// grabbed at pointer. Both are in field coordinates.
func (d *Drag) Begin(pointer, topLeft Point) {
	d.offset = Point{X: pointer.X - topLeft.X, Y: pointer.Y - topLeft.Y}
	d.pos = topLeft
	d.active = true
	state.Logger().Debug("marker drag begun", slog.Float64("x", topLeft.X), slog.Float64("y", topLeft.Y))
}

// BeginAt starts a drag when only the pointer offset inside the marker is
// known.
func (d *Drag) BeginAt(offset, topLeft Point) {
	d.Begin(Point{X: topLeft.X + offset.X, Y: topLeft.Y + offset.Y}, topLeft)
}

// Move returns the new top-left corner for the marker with the pointer at
// pointer, kept inside a field of size field. Without an active drag it
// returns the last position.
func (d *Drag) Move(pointer Point, field, marker Size) Point {
	if !d.active {
		return d.pos
	}
	want := Point{X: pointer.X - d.offset.X, Y: pointer.Y - d.offset.Y}
	d.pos = FieldArea(field).Clamp(want, marker)
	return d.pos
}

// End releases the drag.
func (d *Drag) End() {
	if !d.active {
		return
	}
	d.active = false
	state.Logger().Debug("marker drag ended", slog.Float64("x", d.pos.X), slog.Float64("y", d.pos.Y))
}

func (d *Drag) Active() bool { return d.active }
