package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/featuredesk/internal/model"
)

// Outcome labels shown next to the panel title.
const (
	outcomeSuccess = "Success"
	outcomeError   = "Error"
)

// ResponsePanel displays the rendered response record with reactive
// binding to state.
type ResponsePanel struct {
	widget.BaseWidget

	state         *model.ResponseState
	body          *widget.RichText
	outcomeLabel  *widget.Label
	durationLabel *widget.Label
	placeholder   *widget.Label
	copyBtn       *widget.Button
	clearBtn      *widget.Button

	// Switches between placeholder and body
	contentContainer *fyne.Container

	onCopy func(text string)
}

// NewResponsePanel creates a new response panel bound to the application state.
func NewResponsePanel(state *model.ResponseState) *ResponsePanel {
	p := &ResponsePanel{
		state: state,
	}
	p.ExtendBaseWidget(p)
	p.initializeComponents()
	p.setupBindings()
	return p
}

// initializeComponents creates all UI components.
func (p *ResponsePanel) initializeComponents() {
	p.body = widget.NewRichText()
	p.body.Wrapping = fyne.TextWrapOff

	p.outcomeLabel = widget.NewLabel("")
	p.outcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.durationLabel = widget.NewLabel("")

	p.placeholder = widget.NewLabel("Send a request to see the response")
	p.placeholder.Alignment = fyne.TextAlignCenter
	p.placeholder.Importance = widget.LowImportance

	p.copyBtn = widget.NewButtonWithIcon("", theme.ContentCopyIcon(), p.copyResponse)
	p.clearBtn = widget.NewButtonWithIcon("", theme.ContentClearIcon(), p.ClearResponse)

	p.contentContainer = container.NewStack(container.NewCenter(p.placeholder))
}

// setupBindings establishes reactive bindings to the state.
func (p *ResponsePanel) setupBindings() {
	p.durationLabel.Bind(p.state.Duration)

	refresh := binding.NewDataListener(p.render)
	p.state.TextData.AddListener(refresh)
	p.state.IsError.AddListener(refresh)
}

// render redraws the body and outcome from the current state.
func (p *ResponsePanel) render() {
	text, _ := p.state.TextData.Get()
	failed, _ := p.state.IsError.Get()

	if text == "" {
		p.outcomeLabel.SetText("")
		p.body.Segments = nil
		p.body.Refresh()
		p.contentContainer.Objects = []fyne.CanvasObject{container.NewCenter(p.placeholder)}
		p.contentContainer.Refresh()
		return
	}

	if failed {
		p.outcomeLabel.SetText(outcomeError)
		p.outcomeLabel.Importance = widget.DangerImportance
	} else {
		p.outcomeLabel.SetText(outcomeSuccess)
		p.outcomeLabel.Importance = widget.SuccessImportance
	}
	p.outcomeLabel.Refresh()

	p.body.Segments = highlightJSON(text, failed)
	p.body.Refresh()
	p.contentContainer.Objects = []fyne.CanvasObject{container.NewScroll(p.body)}
	p.contentContainer.Refresh()
}

// SetOnCopy sets the callback that receives the response text on copy.
func (p *ResponsePanel) SetOnCopy(fn func(text string)) {
	p.onCopy = fn
}

func (p *ResponsePanel) copyResponse() {
	text, _ := p.state.TextData.Get()
	if text == "" || p.onCopy == nil {
		return
	}
	p.onCopy(text)
}

// ClearResponse empties the panel.
func (p *ResponsePanel) ClearResponse() {
	p.state.Clear()
}

// CreateRenderer implements fyne.Widget.
func (p *ResponsePanel) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(
		nil, nil,
		container.NewHBox(widget.NewLabelWithStyle("Response", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), p.outcomeLabel),
		container.NewHBox(p.durationLabel, p.copyBtn, p.clearBtn),
	)

	content := container.NewBorder(
		header,
		nil,
		nil,
		nil,
		p.contentContainer,
	)

	return widget.NewSimpleRenderer(content)
}

// MinSize implements fyne.Widget (optional, provides reasonable defaults).
func (p *ResponsePanel) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}
