package http

import (
	"github.com/google/uuid"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message  string `json:"message"   binding:"required,min=1,max=4000"`
	ThreadID string `json:"thread_id" binding:"omitempty,max=64"`
	Mode     string `json:"mode"      binding:"omitempty,max=32"`
}

func (r chatReq) validate() error { return nil }

// toInput maps the request to the domain input. A missing thread id is
// minted here so the caller can correlate the whole conversation. The mode is
// not validated at the boundary: ParseMode folds unknown values to other, the
// strict guardrail state.
func (r chatReq) toInput() chat.ChatInput {
	threadID := r.ThreadID
	if threadID == "" {
		threadID = uuid.NewString()
	}
	return chat.ChatInput{
		Message:  r.Message,
		ThreadID: threadID,
		Mode:     model.ParseMode(r.Mode),
	}
}

// --- Response DTOs ---

type chatResp struct {
	ThreadID   string             `json:"thread_id"`
	Answer     string             `json:"answer"`
	FollowUp   []string           `json:"follow_up"`
	Products   []chat.ProductCard `json:"products"`
	Orders     []model.Order      `json:"orders"`
	References []string           `json:"references"`
}

func (h *handler) newChatResp(threadID string, env chat.Envelope) chatResp {
	return chatResp{
		ThreadID:   threadID,
		Answer:     env.Answer,
		FollowUp:   env.FollowUp,
		Products:   env.Products,
		Orders:     env.Orders,
		References: env.References,
	}
}
