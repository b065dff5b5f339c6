package docs

import (
	"fmt"
	"strings"

	"github.com/shhac/featuredesk/internal/domain"
)

// Example languages, in tab order.
const (
	LangCurl       = "cURL"
	LangPython     = "Python"
	LangJavaScript = "JavaScript"
)

// Languages lists the example tabs in display order.
func Languages() []string {
	return []string{LangCurl, LangPython, LangJavaScript}
}

// Example is one code snippet for one language.
type Example struct {
	Language string
	Title    string
	Code     string
}

// Examples returns a calculate-features call in every language against baseURL.
func Examples(baseURL string) []Example {
	ep := domain.EndpointCalculateFeatures
	url := strings.TrimRight(baseURL, "/") + "/" + ep.Path()
	body := domain.PrettySample(ep)

	return []Example{
		{Language: LangCurl, Title: "cURL", Code: curlExample(url, body)},
		{Language: LangPython, Title: "Python (requests)", Code: pythonExample(url, body)},
		{Language: LangJavaScript, Title: "JavaScript (fetch)", Code: javascriptExample(url, body)},
	}
}

func curlExample(url, body string) string {
	return fmt.Sprintf("curl -X POST \"%s\" \\\n  -H \"Content-Type: application/json\" \\\n  -d '%s'", url, body)
}

func pythonExample(url, body string) string {
	var b strings.Builder
	b.WriteString("import requests\n\n")
	fmt.Fprintf(&b, "url = %q\n", url)
	b.WriteString("payload = ")
	b.WriteString(body)
	b.WriteString("\n\nresponse = requests.post(url, json=payload)\n")
	b.WriteString("print(response.status_code)\n")
	b.WriteString("print(response.json())")
	return b.String()
}

func javascriptExample(url, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "const response = await fetch(%q, {\n", url)
	b.WriteString("  method: 'POST',\n")
	b.WriteString("  headers: { 'Content-Type': 'application/json' },\n")
	b.WriteString("  body: JSON.stringify(")
	b.WriteString(indent(body, "  "))
	b.WriteString(")\n});\n\n")
	b.WriteString("const data = await response.json();\n")
	b.WriteString("console.log(data);")
	return b.String()
}

// indent prefixes every line after the first with prefix.
func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// EndpointDoc describes one API route for the Endpoints section.
type EndpointDoc struct {
	Endpoint domain.Endpoint
	Summary  string
	Returns  []string
}

// EndpointDocs documents every route in display order.
func EndpointDocs() []EndpointDoc {
	features := []string{
		"tot_claim_cnt_l180d: number of claims in the last 180 days",
		"disb_bank_loan_wo_tbc: sum of disbursed loans excluding TBC banks",
		"day_sinlastloan: days since the last loan",
	}
	return []EndpointDoc{
		{
			Endpoint: domain.EndpointCalculateFeatures,
			Summary:  "Calculate features from application data with a structured contracts array.",
			Returns:  features,
		},
		{
			Endpoint: domain.EndpointCalculateFeaturesFromJSON,
			Summary:  "Calculate features from data in the CSV export format, where contracts is a JSON-encoded string.",
			Returns:  features,
		},
		{
			Endpoint: domain.EndpointHealth,
			Summary:  "Health check endpoint.",
			Returns:  []string{"status: \"healthy\" when the service is up", "service: service name"},
		},
	}
}
