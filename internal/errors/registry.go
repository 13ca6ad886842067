package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Config file unreadable",
		Detail:   "The configuration file exists but could not be read.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Config file is not valid JSON",
		Detail:   "The configuration file could not be decoded.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid duration",
		Detail:   "A duration field could not be parsed or is not positive.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The server port must be between 1 and 65535.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid message mode",
		Detail:   `The toast message mode must be "text" or "markup".`,
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Config file not writable",
		Detail:   "The configuration file could not be written.",
	},
	"E106": {
		Category: CategoryConfig,
		Message:  "Config file already exists",
		Detail:   "A configuration file is already present and was left untouched.",
	},

	// ============================================
	// Runtime Errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryRuntime,
		Message:  "Event loop closed",
		Detail:   "The document's event loop has stopped; no further changes can be applied.",
	},
	"E201": {
		Category: CategoryRuntime,
		Message:  "Toast not found",
		Detail:   "No toast with this ID is in the document. It may already have been dismissed.",
	},

	// ============================================
	// Protocol Errors (E300-E399)
	// ============================================

	"E300": {
		Category: CategoryProtocol,
		Message:  "Invalid request payload",
		Detail:   "The request body or WebSocket message could not be decoded.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
