package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/featuredesk/internal/domain"
)

func TestRenderResponse_Healthy(t *testing.T) {
	rec := domain.ResponseRecord{
		Status:       200,
		StatusText:   "OK",
		ResponseTime: "7ms",
		Headers:      map[string]string{"content-type": "application/json"},
		Data:         json.RawMessage(`{"status":"healthy","service":"ML Feature Engineering Service"}`),
	}

	v := RenderResponse(rec)
	assert.False(t, v.IsError)
	assert.Equal(t, "Duration: 7ms", v.Duration)
	assert.Contains(t, v.Text, `"status": 200`)
	assert.Contains(t, v.Text, "  \"data\": {\n    \"status\": \"healthy\"")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(v.Text), &parsed))
	assert.Equal(t, "healthy", parsed["data"].(map[string]any)["status"])
}

func TestRenderResponse_Non2xxFlaggedAsError(t *testing.T) {
	v := RenderResponse(domain.ResponseRecord{Status: 422, StatusText: "Unprocessable Entity", Data: json.RawMessage(`{}`)})
	assert.True(t, v.IsError)
	assert.Contains(t, v.Text, `"status": 422`)
}

func TestRenderError(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	v := RenderError(errors.New("Invalid JSON format"), now)

	assert.True(t, v.IsError)
	assert.Empty(t, v.Duration)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(v.Text), &parsed))
	assert.Equal(t, "Invalid JSON format", parsed["error"])
	assert.Equal(t, "2025-01-02T03:04:05.000Z", parsed["timestamp"])
	assert.NotContains(t, parsed, "status")
}

func TestFormatJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", FormatJSON(`{"a":1}`))
	assert.Equal(t, "not json", FormatJSON("not json"))
}
