package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Ctrl+Enter and Cmd+Enter: Send request
	for _, mod := range []fyne.KeyModifier{fyne.KeyModifierControl, fyne.KeyModifierSuper} {
		canvas.AddShortcut(&desktop.CustomShortcut{
			KeyName:  fyne.KeyReturn,
			Modifier: mod,
		}, func(shortcut fyne.Shortcut) {
			w.logger.Debug("keyboard shortcut: send request")
			w.requestPanel.TriggerSend()
		})

		// Ctrl+K and Cmd+K: Focus request editor
		canvas.AddShortcut(&desktop.CustomShortcut{
			KeyName:  fyne.KeyK,
			Modifier: mod,
		}, func(shortcut fyne.Shortcut) {
			w.logger.Debug("keyboard shortcut: focus editor")
			w.requestPanel.FocusEditor()
		})
	}

	// Escape and Ctrl/Cmd+Enter inside the request editor are handled by the
	// editor itself.

	w.logger.Info("keyboard shortcuts configured")
}
