package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ReadOnlyEntry is a monospace Entry that looks enabled and allows
// selection and copying but rejects every edit.
type ReadOnlyEntry struct {
	widget.Entry
}

// NewReadOnlyCode creates a multi-line read-only entry holding code.
func NewReadOnlyCode(code string) *ReadOnlyEntry {
	e := &ReadOnlyEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	e.SetText(code)
	return e
}

// TypedRune blocks all character input.
func (e *ReadOnlyEntry) TypedRune(_ rune) {}

// TypedKey allows cursor movement only.
func (e *ReadOnlyEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft, fyne.KeyRight, fyne.KeyUp, fyne.KeyDown,
		fyne.KeyHome, fyne.KeyEnd, fyne.KeyPageUp, fyne.KeyPageDown:
		e.Entry.TypedKey(key)
	}
}

// TypedShortcut allows copy and select-all but blocks paste, cut, undo, redo.
func (e *ReadOnlyEntry) TypedShortcut(shortcut fyne.Shortcut) {
	switch shortcut.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(shortcut)
	}
}
