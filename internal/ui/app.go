package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"TacticalBoard/internal/config"
	"TacticalBoard/internal/tool"
)

// RunApp opens the board window and blocks until it is closed. It fails
// only if the drawing surface cannot be set up.
func RunApp(cfg *config.Config) error {
	myApp := app.NewWithID("io.tacticalboard")
	myWindow := myApp.NewWindow("Tactical Board")
	myWindow.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	toolbar := NewToolbar(cfg)
	board := NewBoardWidget(cfg, toolbar)
	if err := board.Init(); err != nil {
		return fmt.Errorf("drawing surface: %w", err)
	}
	toolbar.Bind(board.Controller(), board.report)

	board.Session().OnModeChange = func(m tool.Mode) {
		toolbar.SetMode(m)
		board.SetStatus(modeStatus(m))
	}
	board.SetStatus(modeStatus(tool.ModeIdle))

	bindKeys(myWindow, board)

	content := container.NewBorder(toolbar.Object(), board.StatusBar(), nil, nil, container.NewCenter(board))
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
	return nil
}

// bindKeys routes key presses to the board's shortcuts. Desktop canvases
// report key-down and key-up so held keys do not repeat; other drivers only
// report typed keys.
func bindKeys(w fyne.Window, b *BoardWidget) {
	c := w.Canvas()
	if dc, ok := c.(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(e *fyne.KeyEvent) {
			if _, err := b.Controller().KeyDown(string(e.Name), inTextInput(c)); err != nil {
				b.report("shortcut", err)
			}
		})
		dc.SetOnKeyUp(func(e *fyne.KeyEvent) {
			b.Controller().KeyUp(string(e.Name))
		})
		return
	}
	c.SetOnTypedKey(func(e *fyne.KeyEvent) {
		if _, err := b.Controller().HandleKey(tool.KeyEvent{Key: string(e.Name), InTextInput: inTextInput(c)}); err != nil {
			b.report("shortcut", err)
		}
	})
}

// inTextInput reports whether keyboard focus is in a control that takes
// typed text.
func inTextInput(c fyne.Canvas) bool {
	switch any(c.Focused()).(type) {
	case *widget.Entry, *widget.SelectEntry, *widget.Select:
		return true
	}
	return false
}

func modeStatus(m tool.Mode) string {
	var keys []string
	for _, s := range tool.Shortcuts() {
		keys = append(keys, strings.ToUpper(s.Key[:1])+s.Key[1:]+" "+strings.ToLower(s.Label))
	}
	return fmt.Sprintf("Mode: %s | %s", m, strings.Join(keys, ", "))
}
