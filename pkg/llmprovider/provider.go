package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "deepseek", "qwen")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	JSONMode          bool // request a structured JSON object as the only output
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
