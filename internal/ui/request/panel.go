package request

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/featuredesk/internal/domain"
	"github.com/shhac/featuredesk/internal/model"
)

// RequestPanel handles endpoint selection and the JSON request editor.
//
// The editor, its placeholder and its enabled state all follow the
// RequestState bindings; the panel itself never decides what the editor
// holds. Selecting an endpoint calls onSelect, and the controller behind it
// writes the sample back into the bindings.
type RequestPanel struct {
	widget.BaseWidget

	state  *model.RequestState
	logger *slog.Logger

	endpointSelect *widget.Select
	urlLabel       *widget.Label
	textEditor     *jsonEditor // Multiline JSON editor
	sendBtn        *widget.Button
	formatBtn      *widget.Button

	baseURL string

	onSelect func(ep domain.Endpoint)
	onSend   func()
	onFormat func()
}

// NewRequestPanel creates a new request panel
func NewRequestPanel(state *model.RequestState, baseURL string, logger *slog.Logger) *RequestPanel {
	p := &RequestPanel{
		state:   state,
		logger:  logger,
		baseURL: baseURL,
	}

	p.urlLabel = widget.NewLabel("")
	p.urlLabel.TextStyle = fyne.TextStyle{Monospace: true}
	p.urlLabel.Truncation = fyne.TextTruncateEllipsis

	p.endpointSelect = widget.NewSelect(domain.Labels(), func(label string) {
		ep, err := domain.ParseEndpointLabel(label)
		if err != nil {
			p.logger.Warn("unknown endpoint label", slog.String("label", label))
			return
		}
		p.showEndpoint(ep)
		if p.onSelect != nil {
			p.onSelect(ep)
		}
	})

	// Multiline JSON editor bound to state.TextData
	p.textEditor = newJSONEditor(p.handleSend)
	p.textEditor.Bind(state.TextData)

	p.sendBtn = widget.NewButtonWithIcon(model.SendLabelIdle, theme.MailSendIcon(), p.handleSend)
	p.sendBtn.Importance = widget.HighImportance

	p.formatBtn = widget.NewButton("Format", func() {
		if p.onFormat != nil {
			p.onFormat()
		}
	})

	state.Placeholder.AddListener(binding.NewDataListener(p.syncPlaceholder))
	state.Editable.AddListener(binding.NewDataListener(p.syncEditable))
	state.SendLabel.AddListener(binding.NewDataListener(p.syncSendButton))
	state.Sending.AddListener(binding.NewDataListener(p.syncSendButton))

	p.ExtendBaseWidget(p)
	return p
}

// SetEndpoint shows ep as selected without calling onSelect.
func (p *RequestPanel) SetEndpoint(ep domain.Endpoint) {
	p.endpointSelect.Selected = ep.Label()
	p.endpointSelect.Refresh()
	p.showEndpoint(ep)
}

func (p *RequestPanel) showEndpoint(ep domain.Endpoint) {
	p.urlLabel.SetText(ep.Method() + " " + p.baseURL + "/" + ep.Path())
}

// SetOnSelect sets the callback invoked when the user picks an endpoint.
func (p *RequestPanel) SetOnSelect(fn func(ep domain.Endpoint)) {
	p.onSelect = fn
}

// SetOnSend sets the callback invoked when the send button is pressed.
func (p *RequestPanel) SetOnSend(fn func()) {
	p.onSend = fn
}

// SetOnFormat sets the callback for the Format button.
func (p *RequestPanel) SetOnFormat(fn func()) {
	p.onFormat = fn
}

func (p *RequestPanel) syncPlaceholder() {
	placeholder, _ := p.state.Placeholder.Get()
	p.textEditor.SetPlaceHolder(placeholder)
}

func (p *RequestPanel) syncEditable() {
	editable, _ := p.state.Editable.Get()
	if editable {
		p.textEditor.Enable()
		p.formatBtn.Enable()
	} else {
		p.textEditor.Disable()
		p.formatBtn.Disable()
	}
}

func (p *RequestPanel) syncSendButton() {
	label, _ := p.state.SendLabel.Get()
	sending, _ := p.state.Sending.Get()

	p.sendBtn.SetText(label)
	if sending {
		p.sendBtn.Disable()
	} else {
		p.sendBtn.Enable()
	}
}

// handleSend is called when the user clicks the send button.
func (p *RequestPanel) handleSend() {
	if sending, _ := p.state.Sending.Get(); sending {
		return
	}
	p.logger.Debug("send requested")
	if p.onSend != nil {
		p.onSend()
	}
}

// TriggerSend programmatically triggers the send action (for keyboard shortcuts).
func (p *RequestPanel) TriggerSend() {
	p.handleSend()
}

// FocusEditor moves keyboard focus to the request editor.
func (p *RequestPanel) FocusEditor() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(p.textEditor); c != nil {
		c.Focus(p.textEditor)
	}
}

// CreateRenderer implements fyne.Widget.
func (p *RequestPanel) CreateRenderer() fyne.WidgetRenderer {
	top := container.NewVBox(
		widget.NewLabelWithStyle("Endpoint", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.endpointSelect,
		p.urlLabel,
		widget.NewLabelWithStyle("Request Body", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	bottom := container.NewHBox(p.formatBtn, p.sendBtn)

	content := container.NewBorder(top, container.NewBorder(nil, nil, nil, bottom), nil, nil, p.textEditor)
	return widget.NewSimpleRenderer(content)
}

// MinSize implements fyne.Widget.
func (p *RequestPanel) MinSize() fyne.Size {
	return fyne.NewSize(400, 320)
}
