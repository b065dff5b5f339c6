package docs

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/featuredesk/internal/ui/components"
)

const overviewText = `The ML Feature Engineering API calculates credit features from loan ` +
	`application data. Submit an application with its contract history and ` +
	`the service returns the derived features.

Base URL: `

// NewOverview builds the Overview section.
func NewOverview(baseURL string) fyne.CanvasObject {
	text := widget.NewRichTextFromMarkdown(overviewText + "`" + baseURL + "`")
	text.Wrapping = fyne.TextWrapWord
	return text
}

// NewEndpointList builds the Endpoints section, one card per route.
func NewEndpointList() fyne.CanvasObject {
	box := container.NewVBox()
	for _, doc := range EndpointDocs() {
		var md strings.Builder
		md.WriteString(doc.Summary)
		md.WriteString("\n\n**Returns**\n\n")
		for _, r := range doc.Returns {
			md.WriteString("* ")
			md.WriteString(r)
			md.WriteString("\n")
		}
		body := widget.NewRichTextFromMarkdown(md.String())
		body.Wrapping = fyne.TextWrapWord
		box.Add(widget.NewCard(doc.Endpoint.Label(), "", body))
	}
	return box
}

// NewExampleTabs builds the Examples section: one tab per language, each a
// code block whose copy button calls onCopy.
func NewExampleTabs(baseURL string, onCopy func(code string)) (*components.Tabs, error) {
	examples := Examples(baseURL)
	panes := make([]components.TabPane, len(examples))
	for i, ex := range examples {
		panes[i] = components.TabPane{
			Name:    ex.Language,
			Content: components.NewCodeBlock(ex.Title, ex.Code, onCopy),
		}
	}
	return components.NewTabs(panes...)
}
