package qwen

import "time"

const (
	// DefaultBaseURL is the DashScope OpenAI-compatible endpoint
	DefaultBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

	// DefaultModel is the default model to use
	DefaultModel = "qwen-plus"

	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 60 * time.Second
)
