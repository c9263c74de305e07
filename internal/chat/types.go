package chat

import "parts-support-chat/internal/model"

// ChatInput is one user turn plus its declared interaction mode.
type ChatInput struct {
	Message  string
	ThreadID string
	Mode     model.Mode
}

// ProductCard is a product surfaced in the response.
type ProductCard struct {
	PartID        string   `json:"part_id"`
	Title         string   `json:"title,omitempty"`
	Compatibility string   `json:"compatibility,omitempty"` // "match", "unknown", "mismatch"
	Reasons       []string `json:"reasons,omitempty"`
}

// Envelope is the only shape ever returned to the caller. Every code path,
// including repair and failure paths, produces exactly this.
type Envelope struct {
	Answer     string        `json:"answer"`
	FollowUp   []string      `json:"follow_up"`
	Products   []ProductCard `json:"products"`
	Orders     []model.Order `json:"orders"`
	References []string      `json:"references"`
}

// Intent is the closed classification vocabulary.
type Intent string

const (
	IntentSearchProducts Intent = "search_products"
	IntentOrderHistory   Intent = "order_history"
	IntentNone           Intent = "none"
)
