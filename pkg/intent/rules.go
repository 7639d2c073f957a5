package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Rule maps descriptive keywords to a module kind. Rules are evaluated
// in table order against the lowercased description; within the
// trigger and processing categories the first rule with any matching
// keyword wins, for actions every matching rule contributes.
type Rule struct {
	// Kind is the module kind the rule resolves to.
	Kind string
	// Keywords are matched as case-insensitive substrings.
	Keywords []string
	// Extract, if set, derives kind parameters from the description.
	// It must be pure.
	Extract func(description string) map[string]any
}

func (r Rule) matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Rules groups the per-category rule tables.
type Rules struct {
	Triggers   []Rule
	Processing []Rule
	Actions    []Rule
}

var (
	everyNMinutes = regexp.MustCompile(`every (\d+) minutes?`)
	everyNHours   = regexp.MustCompile(`every (\d+) hours?`)
	labelPhrase   = regexp.MustCompile(`label(?:ed|led)? "?([\w-]+)"?`)
	slackChannel  = regexp.MustCompile(`#([a-z0-9_-]+)`)
	urlPattern    = regexp.MustCompile(`https?://[^\s"']+`)
)

// DefaultRules returns the built-in keyword tables. Ordering encodes
// priority: an email-flavoured description resolves to the Gmail
// trigger even when it also mentions a schedule.
func DefaultRules() Rules {
	return Rules{
		Triggers: []Rule{
			{
				Kind:     "trigger.gmail-watch",
				Keywords: []string{"email", "gmail", "inbox"},
				Extract:  extractGmailFilter,
			},
			{
				Kind:     "trigger.schedule",
				Keywords: []string{"schedule", "every", "hourly", "daily", "weekly", "cron"},
				Extract:  extractCadence,
			},
			{
				Kind:     "trigger.webhook",
				Keywords: []string{"webhook", "api"},
			},
			{
				Kind:     "trigger.excel-watch",
				Keywords: []string{"excel", "spreadsheet", "workbook"},
			},
		},
		Processing: []Rule{
			{
				Kind: "processing.ai-agent",
				Keywords: []string{
					"analyze", "categorize", "generate", "classify",
					"process", "understand", "summarize",
				},
			},
			{
				Kind:     "processing.text-aggregate",
				Keywords: []string{"aggregate", "combine", "concatenate"},
			},
		},
		Actions: []Rule{
			{
				Kind:     "action.send-email",
				Keywords: []string{"reply", "respond", "send an email", "send email", "email back"},
			},
			{
				Kind:     "action.slack-post",
				Keywords: []string{"slack"},
				Extract:  extractSlackChannel,
			},
			{
				Kind:     "action.mysql-query",
				Keywords: []string{"database", "mysql", "sql", "insert", "records"},
				Extract:  extractStatement,
			},
			{
				Kind:     "action.drive-save",
				Keywords: []string{"drive", "upload"},
			},
			{
				Kind:     "action.excel-update",
				Keywords: []string{"report", "worksheet"},
			},
			{
				Kind:     "action.http-request",
				Keywords: []string{"endpoint", "post to", "call the api"},
				Extract:  extractURL,
			},
			{
				Kind:     "action.datastore-log",
				Keywords: []string{"audit", "keep a log", "datastore"},
			},
		},
	}
}

// extractCadence turns cadence phrases into a schedule interval in
// seconds. Explicit counts win over bare cadence words.
func extractCadence(description string) map[string]any {
	lowered := strings.ToLower(description)

	if m := everyNMinutes.FindStringSubmatch(lowered); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return map[string]any{"interval": n * 60}
		}
	}
	if m := everyNHours.FindStringSubmatch(lowered); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return map[string]any{"interval": n * 3600}
		}
	}

	switch {
	case strings.Contains(lowered, "hourly") || strings.Contains(lowered, "every hour"):
		return map[string]any{"interval": 3600}
	case strings.Contains(lowered, "daily") || strings.Contains(lowered, "every day"):
		return map[string]any{"interval": 86400}
	case strings.Contains(lowered, "weekly") || strings.Contains(lowered, "every week"):
		return map[string]any{"interval": 604800}
	}

	return nil
}

// extractGmailFilter composes a Gmail search filter from phrases in
// the description.
func extractGmailFilter(description string) map[string]any {
	lowered := strings.ToLower(description)

	var parts []string
	if strings.Contains(lowered, "unread") {
		parts = append(parts, "is:unread")
	}
	if m := labelPhrase.FindStringSubmatch(lowered); m != nil {
		parts = append(parts, "label:"+m[1])
	}
	if strings.Contains(lowered, "attachment") {
		parts = append(parts, "has:attachment")
	}

	if len(parts) == 0 {
		return nil
	}
	return map[string]any{"filter": strings.Join(parts, " ")}
}

func extractURL(description string) map[string]any {
	if m := urlPattern.FindString(description); m != "" {
		return map[string]any{"url": m}
	}
	return nil
}

func extractSlackChannel(description string) map[string]any {
	if m := slackChannel.FindStringSubmatch(strings.ToLower(description)); m != nil {
		return map[string]any{"channel": "#" + m[1]}
	}
	return nil
}

// extractStatement picks the SQL statement the description implies.
func extractStatement(description string) map[string]any {
	lowered := strings.ToLower(description)

	switch {
	case strings.Contains(lowered, "delete") || strings.Contains(lowered, "remove all"):
		return map[string]any{"statement": "delete"}
	case strings.Contains(lowered, "drop"):
		return map[string]any{"statement": "delete"}
	case strings.Contains(lowered, "update"):
		return map[string]any{"statement": "update"}
	case strings.Contains(lowered, "look up") || strings.Contains(lowered, "select"):
		return map[string]any{"statement": "select"}
	}
	return map[string]any{"statement": "insert"}
}
