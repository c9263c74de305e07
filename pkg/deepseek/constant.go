package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 60 * time.Second
)

// ResponseFormatJSON asks the API for a structured JSON object reply.
const ResponseFormatJSON = "json_object"
