package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
	"parts-support-chat/pkg/llmprovider"
)

var errEmptyAnswer = errors.New("envelope has no answer")

// composeEnvelope asks the model for a full response envelope grounded in the
// tool results, then enforces the contract with at most one repair call. It
// always returns a well-formed envelope; worst case is the raw model text as
// the answer with empty structured fields.
func (uc *implUseCase) composeEnvelope(ctx context.Context, text string, mode model.Mode, ents entities, tr toolResult) chat.Envelope {
	req := &llmprovider.Request{
		SystemInstruction: PromptComposerSystem,
		Messages: []llmprovider.Message{
			{Role: "user", Content: uc.buildComposerContent(text, mode, ents, tr)},
		},
		JSONMode:    true,
		Temperature: ComposerTemperature,
		MaxTokens:   ComposerMaxTokens,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		// The repair budget allows a second call; with no output to repair,
		// spend it re-running the composition.
		uc.l.Warnf(ctx, "%s: provider error, retrying composition: %v", LogPrefixCompose, err)
		resp, err = uc.llm.GenerateContent(ctx, req)
		if err != nil {
			uc.l.Errorf(ctx, "%s: composition failed twice: %v", LogPrefixCompose, err)
			return safeEnvelope(FallbackAnswer)
		}
	}

	raw := resp.Content
	env, perr := parseEnvelope(raw)
	if perr == nil {
		return env
	}
	uc.l.Warnf(ctx, "%s: invalid envelope, issuing repair call: %v", LogPrefixCompose, perr)

	repaired, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: PromptRepairSystem,
		Messages:          []llmprovider.Message{{Role: "user", Content: raw}},
		JSONMode:          true,
		Temperature:       RepairTemperature,
		MaxTokens:         ComposerMaxTokens,
	})
	if err == nil {
		if env, perr := parseEnvelope(repaired.Content); perr == nil {
			return env
		}
	}

	uc.l.Warnf(ctx, "%s: repair failed, returning raw text as answer", LogPrefixCompose)
	return safeEnvelope(raw)
}

// buildComposerContent assembles the line-oriented context block plus the
// user question and the envelope schema instructions. FAQ entries are always
// included; the composer is instructed to answer only from context, so
// irrelevant lines are inert.
func (uc *implUseCase) buildComposerContent(text string, mode model.Mode, ents entities, tr toolResult) string {
	var b strings.Builder
	b.WriteString("Context start\n")
	for _, p := range tr.products {
		fmt.Fprintf(&b, "product:%s title:%s brand:%s category:%s\n", p.PartID, p.Title, p.Brand, p.Category)
		if len(p.CompatibleModels) > 0 {
			fmt.Fprintf(&b, "product:%s compatible_models:%s\n", p.PartID, strings.Join(p.CompatibleModels, ", "))
		}
		if len(p.InstallSteps) > 0 {
			fmt.Fprintf(&b, "product:%s install_steps:%s\n", p.PartID, strings.Join(p.InstallSteps, " | "))
		}
	}
	for _, o := range tr.orders {
		fmt.Fprintf(&b, "order:%s status:%s created:%s items:%d\n", o.OrderID, o.Status, o.CreatedAt, len(o.Items))
		for _, it := range o.Items {
			fmt.Fprintf(&b, "order:%s item:%s title:%s qty:%d price:%.2f\n", o.OrderID, it.PartID, it.Title, it.Quantity, it.Price)
		}
	}
	for _, f := range uc.store.FAQs() {
		fmt.Fprintf(&b, "faq:%s topic:%s checks:%s\n", f.ID, f.Topic, strings.Join(f.Checks, " | "))
	}
	for _, m := range ents.modelIDs {
		fmt.Fprintf(&b, "user_model:%s\n", m)
	}
	b.WriteString("Context end\n\n")

	fmt.Fprintf(&b, "Mode: %s\nUser question:\n%s\n\n%s", mode, text, PromptEnvelopeInstructions)
	return b.String()
}

// parseEnvelope enforces the response contract: valid JSON of the envelope
// shape with a non-empty answer. Missing lists are filled in as empty.
func parseEnvelope(raw string) (chat.Envelope, error) {
	var env chat.Envelope
	if err := json.Unmarshal([]byte(stripMarkdownFences(raw)), &env); err != nil {
		return chat.Envelope{}, err
	}
	if strings.TrimSpace(env.Answer) == "" {
		return chat.Envelope{}, errEmptyAnswer
	}
	if env.FollowUp == nil {
		env.FollowUp = []string{}
	}
	if env.Products == nil {
		env.Products = []chat.ProductCard{}
	}
	if env.Orders == nil {
		env.Orders = []model.Order{}
	}
	if env.References == nil {
		env.References = []string{}
	}
	return env, nil
}

// safeEnvelope is the last-resort degraded response: the given text as the
// answer, everything else empty.
func safeEnvelope(answer string) chat.Envelope {
	return chat.Envelope{
		Answer:     answer,
		FollowUp:   []string{},
		Products:   []chat.ProductCard{},
		Orders:     []model.Order{},
		References: []string{},
	}
}
