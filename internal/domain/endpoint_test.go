package domain

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoint_PathAndMethod(t *testing.T) {
	tests := []struct {
		ep      Endpoint
		path    string
		method  string
		hasBody bool
	}{
		{EndpointCalculateFeatures, "calculate-features", http.MethodPost, true},
		{EndpointCalculateFeaturesFromJSON, "calculate-features-from-json", http.MethodPost, true},
		{EndpointHealth, "health", http.MethodGet, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.path, tt.ep.Path())
			assert.Equal(t, tt.method, tt.ep.Method())
			assert.Equal(t, tt.hasBody, tt.ep.HasBody())
		})
	}
}

func TestParseEndpoint_RoundTrip(t *testing.T) {
	for _, ep := range Endpoints() {
		got, err := ParseEndpoint(ep.Path())
		require.NoError(t, err)
		assert.Equal(t, ep, got)

		got, err = ParseEndpointLabel(ep.Label())
		require.NoError(t, err)
		assert.Equal(t, ep, got)
	}
}

func TestParseEndpoint_Unknown(t *testing.T) {
	_, err := ParseEndpoint("calculate")
	assert.Error(t, err)

	_, err = ParseEndpointLabel("GET /nope")
	assert.Error(t, err)
}

func TestEndpoint_StringForUnknownValue(t *testing.T) {
	assert.Equal(t, "Endpoint(42)", Endpoint(42).String())
	assert.Equal(t, "health", EndpointHealth.String())
}

func TestLabels_DisplayOrder(t *testing.T) {
	assert.Equal(t, []string{
		"POST /calculate-features",
		"POST /calculate-features-from-json",
		"GET /health",
	}, Labels())
}
