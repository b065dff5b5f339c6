package request

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// jsonEditor is the multi-line request body entry. A focused Entry receives
// every shortcut and key before the canvas does, so send and unfocus are
// handled here rather than on the window.
type jsonEditor struct {
	widget.Entry

	onSend func()
}

func newJSONEditor(onSend func()) *jsonEditor {
	e := &jsonEditor{onSend: onSend}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

// TypedShortcut sends on Ctrl+Enter or Cmd+Enter and passes everything else
// to the Entry.
func (e *jsonEditor) TypedShortcut(shortcut fyne.Shortcut) {
	if isSendShortcut(shortcut) {
		if e.onSend != nil {
			e.onSend()
		}
		return
	}
	e.Entry.TypedShortcut(shortcut)
}

// TypedKey drops focus on Escape.
func (e *jsonEditor) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape {
		if c := fyne.CurrentApp().Driver().CanvasForObject(e); c != nil {
			c.Unfocus()
		}
		return
	}
	e.Entry.TypedKey(key)
}

func isSendShortcut(shortcut fyne.Shortcut) bool {
	cs, ok := shortcut.(*desktop.CustomShortcut)
	if !ok || cs.KeyName != fyne.KeyReturn {
		return false
	}
	return cs.Modifier == fyne.KeyModifierControl || cs.Modifier == fyne.KeyModifierSuper
}
