package tool

// Mode is the active tool.
type Mode int

const (
	ModeIdle Mode = iota
	ModePen
	ModeEraser
)

// Armed reports whether the mode captures pointer input on the surface.
func (m Mode) Armed() bool {
	return m == ModePen || m == ModeEraser
}

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePen:
		return "pen"
	case ModeEraser:
		return "eraser"
	}
	return "unknown"
}
