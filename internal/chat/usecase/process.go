package usecase

import (
	"context"
	"strings"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
)

// Process runs the full pipeline for one message: scope guard, deterministic
// resolvers, then classify, dispatch, compose, and reference aggregation.
// Apart from an empty message it always returns a well-formed envelope.
func (uc *implUseCase) Process(ctx context.Context, input chat.ChatInput) (chat.Envelope, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return chat.Envelope{}, chat.ErrMessageRequired
	}
	mode := model.ParseMode(string(input.Mode))

	ents := extractEntities(text)

	if !admit(text, mode) {
		uc.l.Infof(ctx, "%s: out of scope in mode %s", LogPrefixProcess, mode)
		return refusalEnvelope(mode), nil
	}

	// Deterministic resolvers short-circuit before any model call.
	if mode == model.ModeOrders {
		return uc.resolveOrders(ctx, ents), nil
	}
	if len(ents.partIDs) > 0 && (mode == model.ModeIssues || mode == model.ModeCatalog) {
		if env, ok := uc.resolvePartCard(ctx, text, ents); ok {
			return env, nil
		}
	}

	res := uc.classify(ctx, text, mode)
	tr := uc.dispatch(ctx, text, mode, res)
	env := uc.composeEnvelope(ctx, text, mode, ents, tr)

	// References are recomputed from what actually happened, never trusted
	// from the model alone.
	observed := make([]reference, 0, len(tr.products)+len(ents.modelIDs)+1)
	for _, p := range tr.products {
		observed = append(observed, productRef(p.PartID))
	}
	for _, m := range ents.modelIDs {
		observed = append(observed, modelRef(m))
	}
	if tr.tool != "" {
		observed = append(observed, toolRef(tr.tool))
	}
	env.References = aggregateReferences(env.References, observed)

	return env, nil
}
