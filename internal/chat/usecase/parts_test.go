package usecase

import (
	"context"
	"strings"
	"testing"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
)

func gasketFixture() model.Product {
	return model.Product{
		PartID:           "PS123456",
		Title:            "Refrigerator Door Gasket",
		Brand:            "Whirlpool",
		Category:         "Refrigerator",
		CompatibleModels: []string{"WRS325FDAM04"},
		InstallSteps: []string{
			"Unplug the refrigerator",
			"Pull the old gasket out of the retainer channel",
			"Press the new gasket in, starting at a top corner",
		},
		ExternalURL: "https://parts.example.com/PS123456",
	}
}

func gasketStore(t *testing.T) *fakeStore {
	return &fakeStore{
		productByPartID: func(id string) (model.Product, bool) {
			if id != "PS123456" {
				return model.Product{}, false
			}
			return gasketFixture(), true
		},
	}
}

func TestResolvePartCard(t *testing.T) {
	ctx := context.Background()

	t.Run("Install Question Renders Numbered Steps", func(t *testing.T) {
		provider := &scriptedProvider{}
		uc := newTestUseCase(gasketStore(t), provider)

		env, err := uc.Process(ctx, chat.ChatInput{Message: "how do I install PS123456", Mode: model.ModeIssues})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(env.Products) != 1 || env.Products[0].PartID != "PS123456" {
			t.Fatalf("expected exactly one product card: %+v", env.Products)
		}
		for _, step := range []string{"1. Unplug", "2. Pull", "3. Press"} {
			if !strings.Contains(env.Answer, step) {
				t.Errorf("answer missing numbered step %q: %q", step, env.Answer)
			}
		}
		if strings.Contains(env.Answer, "4.") {
			t.Errorf("answer lists more steps than the product has: %q", env.Answer)
		}
		if len(env.References) != 1 || env.References[0] != "product:PS123456" {
			t.Errorf("unexpected references: %v", env.References)
		}
		if provider.calls != 0 {
			t.Errorf("fast path must not call the model, got %d call(s)", provider.calls)
		}
	})

	t.Run("Compatibility Verified Against Model Tag", func(t *testing.T) {
		uc := newTestUseCase(gasketStore(t), &scriptedProvider{})

		env, err := uc.Process(ctx, chat.ChatInput{
			Message: "is PS123456 compatible with my WRS325FDAM04",
			Mode:    model.ModeCatalog,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if env.Products[0].Compatibility != "match" {
			t.Errorf("expected compatibility match, got %q", env.Products[0].Compatibility)
		}
		if !strings.Contains(env.Answer, "WRS325FDAM04") {
			t.Errorf("answer should name the verified model: %q", env.Answer)
		}
	})

	t.Run("Compatibility Unknown Without Matching Tag", func(t *testing.T) {
		uc := newTestUseCase(gasketStore(t), &scriptedProvider{})

		env, err := uc.Process(ctx, chat.ChatInput{
			Message: "is PS123456 compatible with my fridge",
			Mode:    model.ModeCatalog,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if env.Products[0].Compatibility != "unknown" {
			t.Errorf("expected compatibility unknown, got %q", env.Products[0].Compatibility)
		}
		if !strings.Contains(env.Answer, "model tag") {
			t.Errorf("answer should ask for the exact model tag: %q", env.Answer)
		}
	})

	t.Run("External Link Appended", func(t *testing.T) {
		uc := newTestUseCase(gasketStore(t), &scriptedProvider{})

		env, err := uc.Process(ctx, chat.ChatInput{Message: "install steps for PS123456", Mode: model.ModeIssues})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(env.Answer, "https://parts.example.com/PS123456") {
			t.Errorf("answer missing external link: %q", env.Answer)
		}
	})

	t.Run("Catalog Miss Falls Through To Model Path", func(t *testing.T) {
		provider := &scriptedProvider{turns: []scriptedTurn{
			{content: `{"intent": "none", "query": "", "email": "", "reason": "lookup question"}`},
			{content: `{"answer": "I don't have PS999999 on file. Can you double-check the number?", "follow_up": [], "products": [], "orders": [], "references": []}`},
		}}
		uc := newTestUseCase(&fakeStore{}, provider)

		env, err := uc.Process(ctx, chat.ChatInput{Message: "do you carry part PS999999", Mode: model.ModeCatalog})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.calls != 2 {
			t.Errorf("expected classify and compose calls, got %d", provider.calls)
		}
		if !strings.Contains(env.Answer, "PS999999") {
			t.Errorf("unexpected answer: %q", env.Answer)
		}
		if len(env.Products) != 0 {
			t.Errorf("no card should be emitted on a miss: %+v", env.Products)
		}
	})
}
