package domain

import (
	"encoding/json"
	"time"
)

// ISOTimestampLayout renders UTC times with millisecond precision and a Z suffix.
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ResponseRecord is the result of the most recent completed exchange.
// Field order matches the rendered output.
type ResponseRecord struct {
	Status       int               `json:"status"`
	StatusText   string            `json:"statusText"`
	ResponseTime string            `json:"responseTime"`
	Headers      map[string]string `json:"headers"`
	Data         json.RawMessage   `json:"data"`

	Endpoint Endpoint      `json:"-"`
	Elapsed  time.Duration `json:"-"`
}

// OK reports whether the exchange completed with a 2xx status.
func (r ResponseRecord) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// ErrorRecord is rendered in place of a ResponseRecord when the exchange
// could not complete. It never carries a status.
type ErrorRecord struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// NewErrorRecord builds an ErrorRecord stamped with t in UTC.
func NewErrorRecord(message string, t time.Time) ErrorRecord {
	return ErrorRecord{
		Error:     message,
		Timestamp: FormatTimestamp(t),
	}
}

// FormatTimestamp formats t as an ISO-8601 UTC timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

// HealthResponse is the payload served by the doc server health route.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
