package registry

import (
	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/schema"
)

// Default returns the built-in module catalogue. It covers the stock
// triggers, AI processing, routing, and output modules the generator
// knows how to wire.
func Default() *Registry {
	r, err := New(defaultDescriptors()...)
	if err != nil {
		// The built-in catalogue is static; a failure here is a
		// programming error.
		panic(err)
	}
	return r
}

func defaultDescriptors() []Descriptor {
	return []Descriptor{
		{
			Kind:     "trigger.gmail-watch",
			Category: domain.CategoryTrigger,
			Summary:  "Watches a Gmail folder for new messages",
			Params: schema.Schema{
				"watch":      schema.String(),
				"folder":     schema.String(),
				"filter":     schema.String(),
				"maxResults": schema.Int(),
				"markAsRead": schema.Bool(),
			},
			Defaults: map[string]any{
				"watch":      "emails",
				"folder":     "INBOX",
				"filter":     "is:unread -label:processed",
				"maxResults": 10,
				"markAsRead": false,
			},
			Capabilities: []string{"id", "threadId", "subject", "from", "body"},
			Service:      "gmail",
		},
		{
			Kind:     "trigger.schedule",
			Category: domain.CategoryTrigger,
			Summary:  "Fires on a fixed interval",
			Params: schema.Schema{
				"interval": schema.Int(),
				"timezone": schema.String(),
			},
			Defaults: map[string]any{
				"interval": 1800,
				"timezone": "UTC",
			},
			Capabilities: []string{"timestamp"},
		},
		{
			Kind:     "trigger.webhook",
			Category: domain.CategoryTrigger,
			Summary:  "Fires when the scenario's inbound webhook is called",
			Params: schema.Schema{
				"hook":             schema.String(),
				"restrictionType":  schema.Enum("none", "whitelist", "blacklist"),
				"restrictionValue": schema.String(),
			},
			Defaults: map[string]any{
				"hook":             "pending-registration",
				"restrictionType":  "whitelist",
				"restrictionValue": "",
			},
			Capabilities: []string{"payload", "headers"},
		},
		{
			Kind:     "trigger.excel-watch",
			Category: domain.CategoryTrigger,
			Summary:  "Watches Excel workbooks for changes",
			Params: schema.Schema{
				"watch": schema.String(),
				"limit": schema.Int(),
			},
			Defaults: map[string]any{
				"watch": "workbooks",
				"limit": 10,
			},
			Capabilities: []string{"workbookId", "worksheet", "row"},
			Service:      "excel",
		},
		{
			Kind:     "processing.ai-agent",
			Category: domain.CategoryProcessing,
			Summary:  "Sends content to an AI agent and exposes its response",
			Params: schema.Schema{
				"prompt":      schema.Template(),
				"model":       schema.String(),
				"maxTokens":   schema.Int(),
				"temperature": schema.Float(),
				"timeout":     schema.Int(),
			},
			Required: []string{"prompt"},
			Defaults: map[string]any{
				"model":       "gpt-4o-mini",
				"maxTokens":   500,
				"temperature": 0.7,
				"timeout":     300,
			},
			Capabilities: []string{"response", "category", "action"},
			Service:      "openai",
		},
		{
			Kind:     "processing.text-aggregate",
			Category: domain.CategoryProcessing,
			Summary:  "Joins upstream text values into a single string",
			Params: schema.Schema{
				"source":    schema.Template(),
				"separator": schema.String(),
			},
			Required: []string{"source"},
			Defaults: map[string]any{
				"separator": "\n",
			},
			Capabilities: []string{"text"},
			Bind: map[string][]string{
				"source": {"response", "body", "payload"},
			},
		},
		{
			Kind:     "router.branch",
			Category: domain.CategoryRouter,
			Summary:  "Splits the flow into conditional routes",
			Params: schema.Schema{
				"routes": schema.Int(),
			},
			Defaults: map[string]any{
				"routes": 2,
			},
		},
		{
			Kind:     "action.send-email",
			Category: domain.CategoryAction,
			Summary:  "Sends an email reply through Gmail",
			Params: schema.Schema{
				"to":          schema.Template(),
				"subject":     schema.Template(),
				"body":        schema.Template(),
				"contentType": schema.String(),
			},
			Required: []string{"to"},
			Defaults: map[string]any{
				"contentType": "text/html",
			},
			Capabilities: []string{"messageId"},
			Service:      "gmail",
			Bind: map[string][]string{
				"to":      {"from"},
				"subject": {"subject"},
				"body":    {"response", "body", "text"},
			},
		},
		{
			Kind:     "action.gmail-draft",
			Category: domain.CategoryAction,
			Summary:  "Creates a draft reply in Gmail for human review",
			Params: schema.Schema{
				"to":      schema.Template(),
				"subject": schema.Template(),
				"body":    schema.Template(),
			},
			Required:     []string{"to"},
			Capabilities: []string{"draftId"},
			Service:      "gmail",
			Bind: map[string][]string{
				"to":      {"from"},
				"subject": {"subject"},
				"body":    {"response", "body", "text"},
			},
		},
		{
			Kind:     "action.drive-save",
			Category: domain.CategoryAction,
			Summary:  "Saves content as a file in Google Drive",
			Params: schema.Schema{
				"folder":   schema.String(),
				"fileName": schema.Template(),
				"content":  schema.Template(),
			},
			Defaults: map[string]any{
				"folder": "/Automation",
			},
			Capabilities: []string{"fileId"},
			Service:      "google-drive",
			Bind: map[string][]string{
				"fileName": {"subject", "id"},
				"content":  {"response", "body", "text", "payload"},
			},
		},
		{
			Kind:     "action.mysql-query",
			Category: domain.CategoryAction,
			Summary:  "Runs a statement against a MySQL table",
			Params: schema.Schema{
				"table":     schema.String(),
				"statement": schema.Enum("select", "insert", "update", "delete"),
				"values":    schema.Template(),
			},
			Defaults: map[string]any{
				"table":     "automation_logs",
				"statement": "insert",
			},
			Capabilities: []string{"insertId"},
			Service:      "mysql",
			Bind: map[string][]string{
				"values": {"response", "action", "body"},
			},
		},
		{
			Kind:     "action.excel-update",
			Category: domain.CategoryAction,
			Summary:  "Adds or updates a worksheet in an Excel workbook",
			Params: schema.Schema{
				"operation": schema.Enum("addWorksheet", "updateRow"),
				"name":      schema.Template(),
			},
			Defaults: map[string]any{
				"operation": "addWorksheet",
				"name":      "AI_Report",
			},
			Capabilities: []string{"worksheetId"},
			Service:      "excel",
		},
		{
			Kind:     "action.slack-post",
			Category: domain.CategoryAction,
			Summary:  "Posts a message to a Slack channel",
			Params: schema.Schema{
				"channel": schema.String(),
				"text":    schema.Template(),
			},
			Required: []string{"text"},
			Defaults: map[string]any{
				"channel": "#alerts",
			},
			Capabilities: []string{"ts"},
			Service:      "slack",
			Bind: map[string][]string{
				"text": {"response", "body", "text", "payload"},
			},
		},
		{
			Kind:     "action.http-request",
			Category: domain.CategoryAction,
			Summary:  "Calls an external HTTP endpoint",
			Params: schema.Schema{
				"url":    schema.String(),
				"method": schema.Enum("GET", "POST", "PUT", "DELETE"),
				"body":   schema.Template(),
			},
			Required: []string{"url"},
			Defaults: map[string]any{
				"url":    "https://example.com/hook",
				"method": "POST",
			},
			Capabilities: []string{"statusCode", "responseBody"},
			Bind: map[string][]string{
				"body": {"response", "body", "payload"},
			},
		},
		{
			Kind:     "action.datastore-log",
			Category: domain.CategoryAction,
			Summary:  "Appends an execution record to the built-in data store",
			Params: schema.Schema{
				"action":        schema.String(),
				"dataStructure": schema.String(),
				"details":       schema.Template(),
			},
			Defaults: map[string]any{
				"action":        "add",
				"dataStructure": "automation_log",
			},
			Bind: map[string][]string{
				"details": {"response", "action", "body"},
			},
		},
		{
			Kind:     "error.ignore",
			Category: domain.CategoryErrorHandler,
			Summary:  "Retries the failed module, then ignores the error",
			Params: schema.Schema{
				"retryAttempts": schema.Int(),
				"retryInterval": schema.Int(),
			},
			Defaults: map[string]any{
				"retryAttempts": 3,
				"retryInterval": 60,
			},
		},
	}
}
