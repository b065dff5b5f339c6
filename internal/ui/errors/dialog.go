package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/featuredesk/internal/errors"
)

// ShowError displays a rich error dialog with recovery suggestions and
// technical details.
func ShowError(err error, window fyne.Window) {
	if err == nil {
		return
	}

	uiErr := apperrors.ClassifyError(err)
	if uiErr == nil {
		dialog.ShowError(err, window)
		return
	}

	// Word-wrapping labels keep the dialog from expanding horizontally
	msgLabel := widget.NewLabel(uiErr.Message)
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range uiErr.Recovery {
			lbl := widget.NewLabel("• " + suggestion)
			lbl.Wrapping = fyne.TextWrapWord
			content.Add(lbl)
		}
	}

	if uiErr.Details != "" {
		detailsLabel := widget.NewLabel(uiErr.Details)
		detailsLabel.Wrapping = fyne.TextWrapWord
		accordion := widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", detailsLabel),
		)
		content.Add(accordion)
	}

	d := dialog.NewCustom(uiErr.Title, "Close", content, window)
	d.Resize(fyne.NewSize(460, 320))
	d.Show()
}
