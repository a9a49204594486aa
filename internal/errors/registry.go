package errors

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// Markup codes.
const (
	CodeNoItems        = "A001"
	CodeMissingHead    = "A002"
	CodeMissingControl = "A003"
	CodeMissingContent = "A004"
)

// Config codes.
const (
	CodeConfigRead    = "C001"
	CodeConfigInvalid = "C002"
)

// Protocol codes.
const (
	CodeLiveMessage = "L001"
)

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Markup Errors (A001-A099)
	// ============================================

	CodeNoItems: {
		Category:   CategoryMarkup,
		Message:    "No accordion items found",
		Detail:     "The container holds no element with the item class, so the accordion has nothing to control.",
		Suggestion: "Add at least one item element inside the container.",
	},
	CodeMissingHead: {
		Category:   CategoryMarkup,
		Message:    "Item is missing its head element",
		Detail:     "Every item needs a head element holding the toggle button.",
		Suggestion: "Add an element with the head class inside the item.",
	},
	CodeMissingControl: {
		Category:   CategoryMarkup,
		Message:    "Head is missing a button with aria-expanded",
		Detail:     "The toggle control must be a <button> inside the head carrying aria-expanded=\"true\" or \"false\".",
		Suggestion: `Use <button aria-expanded="false"> inside the head.`,
	},
	CodeMissingContent: {
		Category:   CategoryMarkup,
		Message:    "Item is missing its content element",
		Detail:     "The collapsible body of an item is the element with the content class.",
		Suggestion: "Add an element with the content class inside the item.",
	},

	// ============================================
	// Config Errors (C001-C099)
	// ============================================

	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Failed to read configuration",
		Detail:   "The configuration file could not be read or is not valid JSON.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// ============================================
	// Protocol Errors (L001-L099)
	// ============================================

	CodeLiveMessage: {
		Category: CategoryProtocol,
		Message:  "Invalid live message",
		Detail:   "A message received from the browser could not be decoded.",
	},
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
