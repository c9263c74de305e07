package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
	"parts-support-chat/pkg/llmprovider"
)

// intentResult is the accepted outcome of one classification, after the mode
// policy filter has been applied.
type intentResult struct {
	Intent chat.Intent
	Query  string
	Email  string
	Reason string
}

type classifierOutput struct {
	Intent string `json:"intent"`
	Query  string `json:"query"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// classify asks the model for a tool intent and filters it through the mode
// policy. Any failure (provider, parse, unknown intent) degrades to
// IntentNone; classification never fails a request.
func (uc *implUseCase) classify(ctx context.Context, text string, mode model.Mode) intentResult {
	cacheKey := string(mode) + "|" + text
	if cached, ok := uc.intentCache.Get(cacheKey); ok {
		uc.l.Debugf(ctx, "%s: cache hit for mode %s", LogPrefixClassify, mode)
		return cached
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: PromptClassifierSystem,
		Messages: []llmprovider.Message{
			{Role: "user", Content: fmt.Sprintf(PromptClassifierUser, mode, text)},
		},
		JSONMode:    true,
		Temperature: ClassifierTemperature,
		MaxTokens:   ClassifierMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: provider error, degrading to none: %v", LogPrefixClassify, err)
		return intentResult{Intent: chat.IntentNone}
	}

	var out classifierOutput
	if err := json.Unmarshal([]byte(stripMarkdownFences(resp.Content)), &out); err != nil {
		uc.l.Warnf(ctx, "%s: unparseable classification, degrading to none: %v", LogPrefixClassify, err)
		return intentResult{Intent: chat.IntentNone}
	}

	res := intentResult{
		Query:  strings.TrimSpace(out.Query),
		Email:  strings.ToLower(strings.TrimSpace(out.Email)),
		Reason: out.Reason,
	}
	switch chat.Intent(out.Intent) {
	case chat.IntentSearchProducts, chat.IntentOrderHistory:
		res.Intent = chat.Intent(out.Intent)
	default:
		res.Intent = chat.IntentNone
	}

	// Policy filter: an intent the mode does not allow is downgraded and its
	// slots discarded, so a misclassification can never trigger a tool.
	if !intentAllowed(mode, res.Intent) {
		uc.l.Infof(ctx, "%s: intent %s not allowed in mode %s, downgrading to none",
			LogPrefixClassify, res.Intent, mode)
		res = intentResult{Intent: chat.IntentNone, Reason: res.Reason}
	}

	uc.intentCache.Add(cacheKey, res)
	return res
}

// stripMarkdownFences removes a surrounding ```json ... ``` block if the
// model wrapped its structured output in one.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
