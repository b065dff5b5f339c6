package model

import "github.com/shhac/featuredesk/internal/domain"

// Editor placeholders.
const (
	PlaceholderJSON   = "Enter JSON request body..."
	PlaceholderHealth = "No request body needed for health check"
)

// Draft is what the request editor shows for a selection.
type Draft struct {
	Text        string
	Editable    bool
	Placeholder string
}

// LoadSample returns the editor contents for ep: the pretty-printed sample,
// or an empty read-only editor for endpoints without a body.
func LoadSample(ep domain.Endpoint) Draft {
	if !ep.HasBody() {
		return Draft{
			Text:        "",
			Editable:    false,
			Placeholder: PlaceholderHealth,
		}
	}
	return Draft{
		Text:        domain.PrettySample(ep),
		Editable:    true,
		Placeholder: PlaceholderJSON,
	}
}
