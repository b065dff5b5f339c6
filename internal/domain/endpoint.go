package domain

import (
	"fmt"
	"net/http"
)

// Endpoint identifies one of the feature API routes the tester can target.
type Endpoint int

const (
	EndpointCalculateFeatures Endpoint = iota
	EndpointCalculateFeaturesFromJSON
	EndpointHealth
)

var endpointPaths = map[Endpoint]string{
	EndpointCalculateFeatures:         "calculate-features",
	EndpointCalculateFeaturesFromJSON: "calculate-features-from-json",
	EndpointHealth:                    "health",
}

var endpointLabels = map[Endpoint]string{
	EndpointCalculateFeatures:         "POST /calculate-features",
	EndpointCalculateFeaturesFromJSON: "POST /calculate-features-from-json",
	EndpointHealth:                    "GET /health",
}

// Endpoints returns every endpoint in display order.
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointCalculateFeatures,
		EndpointCalculateFeaturesFromJSON,
		EndpointHealth,
	}
}

// ParseEndpoint maps a wire path segment back to its Endpoint.
func ParseEndpoint(path string) (Endpoint, error) {
	for ep, p := range endpointPaths {
		if p == path {
			return ep, nil
		}
	}
	return 0, fmt.Errorf("unknown endpoint %q", path)
}

// ParseEndpointLabel maps a display label back to its Endpoint.
func ParseEndpointLabel(label string) (Endpoint, error) {
	for ep, l := range endpointLabels {
		if l == label {
			return ep, nil
		}
	}
	return 0, fmt.Errorf("unknown endpoint label %q", label)
}

// Path returns the path segment appended to the API base URL.
func (e Endpoint) Path() string {
	if p, ok := endpointPaths[e]; ok {
		return p
	}
	return ""
}

// String implements fmt.Stringer.
func (e Endpoint) String() string {
	if p := e.Path(); p != "" {
		return p
	}
	return fmt.Sprintf("Endpoint(%d)", int(e))
}

// Label returns the human readable "METHOD /path" form.
func (e Endpoint) Label() string {
	return endpointLabels[e]
}

// Method returns the HTTP method used for the endpoint.
func (e Endpoint) Method() string {
	if e == EndpointHealth {
		return http.MethodGet
	}
	return http.MethodPost
}

// HasBody reports whether requests to the endpoint carry a JSON body.
func (e Endpoint) HasBody() bool {
	return e != EndpointHealth
}

// Labels returns the display labels of all endpoints in display order.
func Labels() []string {
	eps := Endpoints()
	labels := make([]string, len(eps))
	for i, ep := range eps {
		labels[i] = ep.Label()
	}
	return labels
}
