package templates

import (
	"strings"

	"github.com/flowforge/flowforge/pkg/intent"
)

// Template is a curated starting point: a named, pre-extracted intent
// set the builder can turn into a scenario without going through
// keyword matching.
type Template struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Keywords    []string       `json:"keywords,omitempty"`
	Result      intent.Result  `json:"-"`
}

// Builtin returns the stock templates, mirroring the scenarios the
// platform catalogue ships with.
func Builtin() []Template {
	return []Template{
		{
			Name:        "gmail-customer-support",
			Description: "Monitor support emails, classify with AI, auto-respond to FAQs, create tickets for complex issues",
			Keywords:    []string{"email", "gmail", "support", "customer"},
			Result: intent.Result{
				Trigger: intent.Intent{
					Kind:   "trigger.gmail-watch",
					Params: map[string]any{"filter": "is:unread label:support"},
				},
				Processing: &intent.Intent{Kind: "processing.ai-agent"},
				Actions: []intent.Intent{
					{Kind: "action.send-email"},
					{Kind: "action.mysql-query", Params: map[string]any{"table": "tickets"}},
				},
				Branching:       true,
				FailureHandling: true,
			},
		},
		{
			Name:        "database-sync",
			Description: "Watch Excel workbooks for changes and sync data to MySQL with AI validation",
			Keywords:    []string{"excel", "spreadsheet", "mysql", "database", "sync"},
			Result: intent.Result{
				Trigger:    intent.Intent{Kind: "trigger.excel-watch"},
				Processing: &intent.Intent{Kind: "processing.ai-agent"},
				Actions: []intent.Intent{
					{Kind: "action.mysql-query", Params: map[string]any{"table": "excel_data"}},
				},
				FailureHandling: true,
			},
		},
		{
			Name:        "excel-report",
			Description: "Summarize activity on a schedule and publish a worksheet report",
			Keywords:    []string{"report", "summary", "digest"},
			Result: intent.Result{
				Trigger: intent.Intent{
					Kind:   "trigger.schedule",
					Params: map[string]any{"interval": 86400},
				},
				Processing: &intent.Intent{Kind: "processing.ai-agent"},
				Actions: []intent.Intent{
					{Kind: "action.excel-update"},
				},
			},
		},
		{
			Name:        "http-orchestrator",
			Description: "Fetch data from internal APIs, process with AI, and distribute to multiple systems",
			Keywords:    []string{"api", "http", "webhook", "enterprise"},
			Result: intent.Result{
				Trigger: intent.Intent{Kind: "trigger.webhook"},
				Processing: &intent.Intent{Kind: "processing.ai-agent"},
				Actions: []intent.Intent{
					{Kind: "action.http-request"},
					{Kind: "action.slack-post"},
					{Kind: "action.datastore-log"},
				},
				Branching:       true,
				FailureHandling: true,
			},
		},
	}
}

// Lookup finds a template by name.
func Lookup(catalogue []Template, name string) (Template, bool) {
	for _, t := range catalogue {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Match picks the first template with a keyword appearing in the
// description.
func Match(catalogue []Template, description string) (Template, bool) {
	lowered := strings.ToLower(description)
	for _, t := range catalogue {
		for _, kw := range t.Keywords {
			if strings.Contains(lowered, kw) {
				return t, true
			}
		}
	}
	return Template{}, false
}

// Names lists template names in catalogue order.
func Names(catalogue []Template) []string {
	names := make([]string, len(catalogue))
	for i, t := range catalogue {
		names[i] = t.Name
	}
	return names
}
