package usecase

import (
	"context"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
)

// toolResult carries whatever a dispatched catalog accessor returned. An
// empty tool name means nothing ran.
type toolResult struct {
	tool     string
	products []model.Product
	orders   []model.Order
}

// dispatch maps an accepted (intent, mode) pair to a catalog accessor call.
// A missing required slot yields an empty result, never an error.
func (uc *implUseCase) dispatch(ctx context.Context, text string, mode model.Mode, res intentResult) toolResult {
	switch res.Intent {
	case chat.IntentSearchProducts:
		if mode != model.ModeCatalog && mode != model.ModeIssues {
			return toolResult{}
		}
		query := res.Query
		if query == "" {
			query = text
		}
		hits := uc.store.SearchProducts(query, SearchLimit)
		uc.l.Debugf(ctx, "%s: search %q returned %d product(s)", LogPrefixDispatch, query, len(hits))
		return toolResult{tool: ToolSearchProducts, products: hits}

	case chat.IntentOrderHistory:
		if mode != model.ModeOrders || res.Email == "" {
			return toolResult{}
		}
		orders := uc.store.OrdersByEmail(res.Email, OrderToolLimit)
		uc.l.Debugf(ctx, "%s: order history returned %d order(s)", LogPrefixDispatch, len(orders))
		return toolResult{tool: ToolOrderHistory, orders: orders}
	}

	return toolResult{}
}
