package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseRecord_FieldOrder(t *testing.T) {
	rec := ResponseRecord{
		Status:       200,
		StatusText:   "OK",
		ResponseTime: "12ms",
		Headers:      map[string]string{"content-type": "application/json"},
		Data:         json.RawMessage(`{"status":"healthy"}`),
	}

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t,
		`{"status":200,"statusText":"OK","responseTime":"12ms","headers":{"content-type":"application/json"},"data":{"status":"healthy"}}`,
		string(out))
}

func TestResponseRecord_OK(t *testing.T) {
	assert.True(t, ResponseRecord{Status: 200}.OK())
	assert.True(t, ResponseRecord{Status: 204}.OK())
	assert.False(t, ResponseRecord{Status: 302}.OK())
	assert.False(t, ResponseRecord{Status: 422}.OK())
}

func TestNewErrorRecord(t *testing.T) {
	ts := time.Date(2024, 2, 12, 19, 24, 29, 135_000_000, time.FixedZone("X", 3600))
	rec := NewErrorRecord("Invalid JSON format", ts)

	assert.Equal(t, "2024-02-12T18:24:29.135Z", rec.Timestamp)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"status"`)
}

func TestServerStatus_NewerThan(t *testing.T) {
	base := time.Now()
	older := ServerStatus{RequestedAt: base}
	newer := ServerStatus{RequestedAt: base.Add(time.Second)}

	assert.True(t, newer.NewerThan(older))
	assert.False(t, older.NewerThan(newer))
	assert.False(t, older.NewerThan(older))
}
