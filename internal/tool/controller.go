package tool

import (
	"log/slog"
	"strings"

	"TacticalBoard/internal/state"
)

// Shortcut binds a key to a controller action.
type Shortcut struct {
	Key   string
	Label string
	run   func(*Controller) error
}

var shortcuts = []Shortcut{
	{Key: "p", Label: "Pen", run: func(c *Controller) error { return c.session.SetMode(ModePen) }},
	{Key: "e", Label: "Eraser", run: func(c *Controller) error { return c.session.SetMode(ModeEraser) }},
	{Key: "c", Label: "Clear", run: func(c *Controller) error { return c.session.Clear() }},
	{Key: "escape", Label: "Done", run: func(c *Controller) error { return c.session.SetMode(ModeIdle) }},
}

// Shortcuts lists the keyboard bindings in display order.
func Shortcuts() []Shortcut {
	out := make([]Shortcut, len(shortcuts))
	copy(out, shortcuts)
	return out
}

// KeyEvent is a key-down reported by the host.
type KeyEvent struct {
	Key string
	// Repeat is set for auto-repeat key-downs while the key is held.
	Repeat bool
	// InTextInput is set while keyboard focus is in a text-input-like control.
	InTextInput bool
}

// Controller exposes tool selection and keyboard shortcuts for a session.
type Controller struct {
	session *Session
	held    map[string]bool
}

func NewController(s *Session) *Controller {
	return &Controller{session: s, held: make(map[string]bool)}
}

// SelectPen, SelectEraser, SelectIdle and Clear serve non-keyboard controls.
// Such a control can take focus while a key is down, and the key-up then
// goes to the control, so held keys are forgotten here.
func (c *Controller) SelectPen() error    { return c.pick(ModePen) }
func (c *Controller) SelectEraser() error { return c.pick(ModeEraser) }

// SelectIdle leaves the armed modes so pointer input reaches the markers.
func (c *Controller) SelectIdle() error { return c.pick(ModeIdle) }

// Clear empties the scene and repaints.
func (c *Controller) Clear() error {
	c.ReleaseKeys()
	return c.session.Clear()
}

func (c *Controller) pick(m Mode) error {
	c.ReleaseKeys()
	return c.session.SetMode(m)
}

// ReleaseKeys forgets every key tracked by KeyDown.
func (c *Controller) ReleaseKeys() {
	clear(c.held)
}

// HandleKey runs the shortcut bound to ev.Key. It reports whether an action
// ran. Repeats and keys typed into text inputs are ignored.
func (c *Controller) HandleKey(ev KeyEvent) (bool, error) {
	if ev.Repeat || ev.InTextInput {
		return false, nil
	}
	key := strings.ToLower(ev.Key)
	for _, sc := range shortcuts {
		if sc.Key != key {
			continue
		}
		state.Logger().Debug("shortcut", slog.String("key", key), slog.String("action", sc.Label))
		return true, sc.run(c)
	}
	return false, nil
}

// KeyDown is HandleKey for hosts that do not flag auto-repeat themselves: a
// key already down since its last KeyUp counts as a repeat.
func (c *Controller) KeyDown(key string, inTextInput bool) (bool, error) {
	k := strings.ToLower(key)
	repeat := c.held[k]
	c.held[k] = true
	return c.HandleKey(KeyEvent{Key: k, Repeat: repeat, InTextInput: inTextInput})
}

// KeyUp releases a key tracked by KeyDown.
func (c *Controller) KeyUp(key string) {
	delete(c.held, strings.ToLower(key))
}
