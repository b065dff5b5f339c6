package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shhac/featuredesk/internal/domain"
)

// ResponseView is the rendered response panel.
type ResponseView struct {
	Text     string
	IsError  bool
	Duration string
}

// RenderResponse renders a completed exchange. Non-2xx records are flagged
// as errors but rendered in full.
func RenderResponse(rec domain.ResponseRecord) ResponseView {
	return ResponseView{
		Text:     indentJSON(rec),
		IsError:  !rec.OK(),
		Duration: "Duration: " + rec.ResponseTime,
	}
}

// RenderError renders a failed exchange as an error record stamped with now.
func RenderError(err error, now time.Time) ResponseView {
	return ResponseView{
		Text:    indentJSON(domain.NewErrorRecord(err.Error(), now)),
		IsError: true,
	}
}

// FormatJSON pretty-prints text when it is valid JSON and returns it
// unchanged otherwise.
func FormatJSON(text string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return text
	}
	return buf.String()
}

func indentJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
