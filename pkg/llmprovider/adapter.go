package llmprovider

import (
	"context"
	"fmt"

	"parts-support-chat/pkg/deepseek"
	"parts-support-chat/pkg/gemini"
	"parts-support-chat/pkg/qwen"
)

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages:    convertToChatMessages(req, func(role, content string) deepseek.Message { return deepseek.Message{Role: role, Content: content} }),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: deepseek.ResponseFormatJSON}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("deepseek: empty choices")
	}

	out := &Response{
		Content:      resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwReq := &qwen.Request{
		Messages:    convertToChatMessages(req, func(role, content string) qwen.Message { return qwen.Message{Role: role, Content: content} }),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		qwReq.ResponseFormat = &qwen.ResponseFormat{Type: "json_object"}
	}

	resp, err := a.client.GenerateContent(ctx, qwReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("qwen: empty choices")
	}

	out := &Response{
		Content:      resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns the provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns the model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gmReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONOutput:        req.JSONMode,
	}
	for _, msg := range req.Messages {
		gmReq.Messages = append(gmReq.Messages, gemini.Message{Role: msg.Role, Content: msg.Content})
	}

	resp, err := a.client.GenerateContent(ctx, gmReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if resp.Text == "" {
		return nil, fmt.Errorf("gemini: empty response")
	}

	out := &Response{
		Content:      resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// convertToChatMessages flattens the normalized request into provider messages,
// folding the system instruction in as the leading system message.
func convertToChatMessages[T any](req *Request, mk func(role, content string) T) []T {
	out := make([]T, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		out = append(out, mk("system", req.SystemInstruction))
	}
	for _, msg := range req.Messages {
		out = append(out, mk(msg.Role, msg.Content))
	}
	return out
}
