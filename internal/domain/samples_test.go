package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_BodyEndpointsAreValidJSON(t *testing.T) {
	for _, ep := range Endpoints() {
		raw, ok := Sample(ep)
		if !ep.HasBody() {
			assert.False(t, ok, "%s should have no sample", ep)
			assert.Nil(t, raw)
			continue
		}
		require.True(t, ok, "%s should have a sample", ep)
		assert.True(t, json.Valid(raw), "%s sample must be valid JSON", ep)
	}
}

func TestSample_ReturnsCopy(t *testing.T) {
	raw, ok := Sample(EndpointCalculateFeatures)
	require.True(t, ok)
	raw[0] = 'X'

	again, _ := Sample(EndpointCalculateFeatures)
	assert.Equal(t, byte('{'), again[0], "registry must not be mutated through a returned sample")
}

func TestSample_Contents(t *testing.T) {
	var structured struct {
		ID        string `json:"id"`
		Contracts []struct {
			Bank string `json:"bank"`
		} `json:"contracts"`
	}
	raw, _ := Sample(EndpointCalculateFeatures)
	require.NoError(t, json.Unmarshal(raw, &structured))
	assert.Equal(t, "test_123", structured.ID)
	require.Len(t, structured.Contracts, 2)
	assert.Equal(t, "LIZ", structured.Contracts[1].Bank)

	var flat struct {
		ID        string `json:"id"`
		Contracts string `json:"contracts"`
	}
	raw, _ = Sample(EndpointCalculateFeaturesFromJSON)
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.Equal(t, "test_456", flat.ID)
	assert.True(t, json.Valid([]byte(flat.Contracts)), "embedded contracts string is itself JSON")
}

func TestPrettySample(t *testing.T) {
	assert.Empty(t, PrettySample(EndpointHealth))

	pretty := PrettySample(EndpointCalculateFeatures)
	assert.True(t, strings.HasPrefix(pretty, "{\n  \"id\": \"test_123\""))
}
