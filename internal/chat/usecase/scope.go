package usecase

import (
	"strings"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
)

// admit decides whether a message is in scope for the appliance-parts domain.
// Orders mode is always admitted: its resolvers are deterministic and a user
// pasting only an email or order id has no keywords to match.
func admit(text string, mode model.Mode) bool {
	if mode == model.ModeOrders {
		return true
	}
	if partIDPattern.MatchString(text) || emailPattern.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range scopeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// refusalEnvelope is the fixed out-of-scope reply with mode-appropriate
// follow-up suggestions. It costs no model call.
func refusalEnvelope(mode model.Mode) chat.Envelope {
	followUp, ok := refusalFollowUps[string(mode)]
	if !ok {
		followUp = refusalFollowUps[string(model.ModeOther)]
	}
	return chat.Envelope{
		Answer:     RefusalAnswer,
		FollowUp:   followUp,
		Products:   []chat.ProductCard{},
		Orders:     []model.Order{},
		References: []string{},
	}
}
