package gemini

import "time"

const (
	// DefaultAPIURL is the Gemini REST endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the default model to use
	DefaultModel = "gemini-2.0-flash"

	// DefaultTimeout bounds a single generateContent call
	DefaultTimeout = 60 * time.Second
)
