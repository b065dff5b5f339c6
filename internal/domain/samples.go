package domain

import (
	"bytes"
	"encoding/json"
)

// samplePayloads is the Sample Payload Registry. Entries are never mutated;
// Sample hands out copies.
var samplePayloads = map[Endpoint][]byte{
	EndpointCalculateFeatures: []byte(`{
  "id": "test_123",
  "application_date": "2024-02-12T19:24:29.135000",
  "contracts": [
    {
      "contract_id": "522530",
      "bank": "003",
      "summa": "500000000",
      "loan_summa": "0",
      "claim_date": "13.02.2020",
      "claim_id": "609965",
      "contract_date": "17.02.2020"
    },
    {
      "contract_id": "522531",
      "bank": "LIZ",
      "summa": "1000000",
      "loan_summa": "1000000",
      "claim_date": "15.01.2024",
      "claim_id": "609966",
      "contract_date": "20.01.2024"
    }
  ]
}`),
	EndpointCalculateFeaturesFromJSON: []byte(`{
  "id": "test_456",
  "application_date": "2024-02-12 19:24:29.135000+00:00",
  "contracts": "[{\"contract_id\": 522530, \"bank\": \"003\", \"summa\": 500000000, \"loan_summa\": 0, \"claim_date\": \"13.02.2020\", \"claim_id\": \"609965\", \"contract_date\": \"17.02.2020\"}]"
}`),
}

// Sample returns a copy of the canned request body for ep.
// The health endpoint has no sample.
func Sample(ep Endpoint) (json.RawMessage, bool) {
	raw, ok := samplePayloads[ep]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return json.RawMessage(out), true
}

// PrettySample returns the sample for ep indented with two spaces, or ""
// when the endpoint has none.
func PrettySample(ep Endpoint) string {
	raw, ok := Sample(ep)
	if !ok {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
