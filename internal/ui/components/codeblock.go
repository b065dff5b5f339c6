package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CodeBlock shows a snippet with a copy button in its header.
type CodeBlock struct {
	widget.BaseWidget

	code    string
	title   *widget.Label
	body    *ReadOnlyEntry
	copyBtn *widget.Button

	onCopy func(code string)
}

// NewCodeBlock creates a code block. onCopy receives the snippet when the
// copy button is tapped.
func NewCodeBlock(title, code string, onCopy func(code string)) *CodeBlock {
	b := &CodeBlock{
		code:   code,
		onCopy: onCopy,
	}
	b.title = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	b.body = NewReadOnlyCode(code)
	b.copyBtn = widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), b.Copy)
	b.copyBtn.Importance = widget.LowImportance

	b.ExtendBaseWidget(b)
	return b
}

// Code returns the snippet.
func (b *CodeBlock) Code() string {
	return b.code
}

// Copy hands the snippet to the copy callback.
func (b *CodeBlock) Copy() {
	if b.onCopy != nil {
		b.onCopy(b.code)
	}
}

// CreateRenderer implements fyne.Widget.
func (b *CodeBlock) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, b.title, b.copyBtn)
	return widget.NewSimpleRenderer(container.NewBorder(header, nil, nil, nil, b.body))
}

// MinSize keeps a few lines of code visible.
func (b *CodeBlock) MinSize() fyne.Size {
	size := b.BaseWidget.MinSize()
	if size.Height < 160 {
		size.Height = 160
	}
	return size
}
