package model

import (
	"fyne.io/fyne/v2/data/binding"

	"github.com/shhac/featuredesk/internal/domain"
)

// Send button labels.
const (
	SendLabelIdle    = "Send Request"
	SendLabelSending = "Sending..."
)

// ApplicationState represents the centralized application state with Fyne data bindings.
// Widgets bind to these values; the pure functions in this package compute
// what gets written into them.
type ApplicationState struct {
	// Selection state
	SelectedEndpoint binding.String // domain.Endpoint path

	// Request/Response state
	Request  *RequestState
	Response *ResponseState

	// Server status indicator
	Server *ServerState

	// Documentation navigation
	ExampleTab    binding.String
	ActiveSection binding.String
}

// NewApplicationState creates a new ApplicationState with initialized bindings.
func NewApplicationState() *ApplicationState {
	s := &ApplicationState{
		SelectedEndpoint: binding.NewString(),
		Request:          NewRequestState(),
		Response:         NewResponseState(),
		Server:           NewServerState(),
		ExampleTab:       binding.NewString(),
		ActiveSection:    binding.NewString(),
	}
	_ = s.SelectedEndpoint.Set(domain.EndpointCalculateFeatures.Path())
	return s
}

// Endpoint returns the selected endpoint, falling back to calculate-features.
func (s *ApplicationState) Endpoint() domain.Endpoint {
	path, _ := s.SelectedEndpoint.Get()
	ep, err := domain.ParseEndpoint(path)
	if err != nil {
		return domain.EndpointCalculateFeatures
	}
	return ep
}

// RequestState represents the state of the request panel.
type RequestState struct {
	TextData    binding.String // JSON draft
	Editable    binding.Bool
	Placeholder binding.String
	Sending     binding.Bool   // Whether a request is in flight
	SendLabel   binding.String // Trigger label
}

// NewRequestState creates a new RequestState with initialized bindings.
func NewRequestState() *RequestState {
	editable := binding.NewBool()
	_ = editable.Set(true)

	label := binding.NewString()
	_ = label.Set(SendLabelIdle)

	placeholder := binding.NewString()
	_ = placeholder.Set(PlaceholderJSON)

	return &RequestState{
		TextData:    binding.NewString(),
		Editable:    editable,
		Placeholder: placeholder,
		Sending:     binding.NewBool(),
		SendLabel:   label,
	}
}

// ApplyDraft writes a loaded sample into the bindings.
func (r *RequestState) ApplyDraft(d Draft) {
	_ = r.TextData.Set(d.Text)
	_ = r.Placeholder.Set(d.Placeholder)
	_ = r.Editable.Set(d.Editable)
}

// SetSending flips the trigger between its idle and in-flight presentation.
func (r *RequestState) SetSending(sending bool) {
	_ = r.Sending.Set(sending)
	if sending {
		_ = r.SendLabel.Set(SendLabelSending)
	} else {
		_ = r.SendLabel.Set(SendLabelIdle)
	}
}

// ResponseState represents the state of the response panel.
type ResponseState struct {
	TextData binding.String // Rendered record
	IsError  binding.Bool   // Drives the error colouring
	Duration binding.String // e.g. "Duration: 12ms"
}

// NewResponseState creates a new ResponseState with initialized bindings.
func NewResponseState() *ResponseState {
	return &ResponseState{
		TextData: binding.NewString(),
		IsError:  binding.NewBool(),
		Duration: binding.NewString(),
	}
}

// Apply writes a rendered view into the bindings.
func (r *ResponseState) Apply(v ResponseView) {
	_ = r.TextData.Set(v.Text)
	_ = r.IsError.Set(v.IsError)
	_ = r.Duration.Set(v.Duration)
}

// Clear empties the response panel.
func (r *ResponseState) Clear() {
	r.Apply(ResponseView{})
}

// ServerState represents the server status indicator.
type ServerState struct {
	Online  binding.Bool
	Message binding.String
}

// NewServerState creates a new ServerState in the "checking" state.
func NewServerState() *ServerState {
	message := binding.NewString()
	_ = message.Set(domain.StatusMessageChecking)

	return &ServerState{
		Online:  binding.NewBool(),
		Message: message,
	}
}

// Apply writes a server status into the bindings.
func (s *ServerState) Apply(st domain.ServerStatus) {
	_ = s.Online.Set(st.Online)
	_ = s.Message.Set(st.Message)
}
