package usecase

import (
	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
)

// modePolicy is the per-mode allow-list of tool intents. A classified intent
// outside the active mode's set is downgraded to none before dispatch, so an
// over-eager classification can never widen what a mode may do.
var modePolicy = map[model.Mode]map[chat.Intent]bool{
	model.ModeCatalog: {chat.IntentSearchProducts: true},
	model.ModeOrders:  {chat.IntentOrderHistory: true},
	model.ModeIssues:  {},
	model.ModeOther:   {},
}

func intentAllowed(mode model.Mode, intent chat.Intent) bool {
	if intent == chat.IntentNone {
		return true
	}
	return modePolicy[mode][intent]
}
