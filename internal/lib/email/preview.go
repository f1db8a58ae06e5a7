package email

// PreviewData holds sample values for every template, keyed by template
// name, for local previews and tests.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"Username": "jdoe",
	},
	TemplateNotification: {
		"Username":  "jdoe",
		"Message":   "Your Groceries budget is 90% spent",
		"Timestamp": "Mon, 02 Jan 2006 15:04:05 UTC",
	},
}
