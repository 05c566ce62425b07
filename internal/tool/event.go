package tool

import "TacticalBoard/internal/state"

type EventKind int

const (
	Press EventKind = iota
	Move
	Release
	Leave
)

func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Leave:
		return "leave"
	}
	return "unknown"
}

type Source int

const (
	Mouse Source = iota
	Touch
)

// Event is a pointer event reported by the drawing surface. Positions are in
// the surface's logical coordinates. Touch events carry every active contact
// in Touches; only the first one is used.
type Event struct {
	Kind    EventKind
	Source  Source
	Pos     state.Point
	Touches []state.Point
}

// MouseEvent builds a mouse event at p.
func MouseEvent(kind EventKind, p state.Point) Event {
	return Event{Kind: kind, Source: Mouse, Pos: p}
}

// TouchEvent builds a touch event from the active contacts.
func TouchEvent(kind EventKind, touches ...state.Point) Event {
	return Event{Kind: kind, Source: Touch, Touches: touches}
}

// point returns the position the event acts on.
func (e Event) point() (state.Point, bool) {
	if e.Source == Touch {
		if len(e.Touches) == 0 {
			return state.Point{}, false
		}
		return e.Touches[0], true
	}
	return e.Pos, true
}
