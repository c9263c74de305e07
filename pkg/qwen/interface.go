package qwen

import "context"

// IQwen defines the interface for the Qwen LLM client
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
