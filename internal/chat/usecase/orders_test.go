package usecase

import (
	"context"
	"strings"
	"testing"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
)

func ordersFixture() model.Order {
	return model.Order{
		OrderID:   "ORD0009",
		Email:     "jane@example.com",
		CreatedAt: "2024-03-01T10:00:00Z",
		Status:    "shipped",
		Items: []model.OrderItem{
			{PartID: "PS123456", Title: "Door Gasket", Quantity: 2, Price: 10.00},
			{Title: "Hinge Kit", Quantity: 1, Price: 5.00},
		},
	}
}

func TestResolveOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Order By Id Hit", func(t *testing.T) {
		store := &fakeStore{
			orderByID: func(id string) (model.Order, bool) {
				if id != "ORD0009" {
					t.Errorf("unexpected lookup id %q", id)
				}
				return ordersFixture(), true
			},
		}
		uc := newTestUseCase(store, &scriptedProvider{})

		env, err := uc.Process(ctx, chat.ChatInput{Message: "where is ord0009", Mode: model.ModeOrders})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(env.Answer, "ORD0009") || !strings.Contains(env.Answer, "shipped") {
			t.Errorf("answer missing order id or status: %q", env.Answer)
		}
		if !strings.Contains(env.Answer, "Total: $25.00") {
			t.Errorf("expected computed total 25.00 in answer: %q", env.Answer)
		}
		if !strings.Contains(env.Answer, "Door Gasket (PS123456) x2") {
			t.Errorf("expected itemized line: %q", env.Answer)
		}
		if len(env.Orders) != 1 || env.Orders[0].OrderID != "ORD0009" {
			t.Errorf("expected the order in the payload: %+v", env.Orders)
		}
		if len(env.References) != 1 || env.References[0] != "tool:order_by_id" {
			t.Errorf("unexpected references: %v", env.References)
		}
	})

	t.Run("Order By Id Miss Asks For Email", func(t *testing.T) {
		uc := newTestUseCase(&fakeStore{}, &scriptedProvider{})

		env, err := uc.Process(ctx, chat.ChatInput{Message: "status of ORD9999", Mode: model.ModeOrders})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(env.Answer, "ORD9999") || !strings.Contains(strings.ToLower(env.Answer), "email") {
			t.Errorf("miss should apologize and ask for an email: %q", env.Answer)
		}
		if len(env.Orders) != 0 {
			t.Errorf("expected no orders, got %+v", env.Orders)
		}
	})

	t.Run("Order By Email Summarizes Five Most Recent", func(t *testing.T) {
		var gotLimit int
		store := &fakeStore{
			ordersByEmail: func(email string, limit int) []model.Order {
				gotLimit = limit
				if email != "jane@example.com" {
					t.Errorf("email not lowercased: %q", email)
				}
				orders := make([]model.Order, 7)
				for i := range orders {
					orders[i] = model.Order{
						OrderID:   "ORD000" + string(rune('7'-i)),
						CreatedAt: "2024-0" + string(rune('7'-i)) + "-01T00:00:00Z",
						Status:    "delivered",
					}
				}
				return orders
			},
		}
		uc := newTestUseCase(store, &scriptedProvider{})

		env, err := uc.Process(ctx, chat.ChatInput{Message: "orders for Jane@Example.com please", Mode: model.ModeOrders})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotLimit != OrdersDataCap {
			t.Errorf("store queried with limit %d, want %d", gotLimit, OrdersDataCap)
		}
		if len(env.Orders) != 7 {
			t.Errorf("expected all 7 orders in payload, got %d", len(env.Orders))
		}
		if got := strings.Count(env.Answer, "\n- "); got != OrdersSummaryCap {
			t.Errorf("prose summarizes %d orders, want %d", got, OrdersSummaryCap)
		}
		if !strings.Contains(env.Answer, "...and 2 more.") {
			t.Errorf("expected overflow note: %q", env.Answer)
		}
		if len(env.References) != 1 || env.References[0] != "tool:order_history_by_email" {
			t.Errorf("unexpected references: %v", env.References)
		}
	})

	t.Run("Order By Email Empty Names The Email", func(t *testing.T) {
		uc := newTestUseCase(&fakeStore{}, &scriptedProvider{})

		env, err := uc.Process(ctx, chat.ChatInput{Message: "orders for ghost@example.com", Mode: model.ModeOrders})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(env.Answer, "ghost@example.com") {
			t.Errorf("apology should name the email: %q", env.Answer)
		}
	})

	t.Run("Order Id Wins Over Email", func(t *testing.T) {
		store := &fakeStore{
			orderByID: func(id string) (model.Order, bool) { return ordersFixture(), true },
			ordersByEmail: func(email string, limit int) []model.Order {
				t.Error("email path must not run when an order id is present")
				return nil
			},
		}
		uc := newTestUseCase(store, &scriptedProvider{})

		if _, err := uc.Process(ctx, chat.ChatInput{Message: "ORD0009 for jane@example.com", Mode: model.ModeOrders}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Neither Key Asks For One", func(t *testing.T) {
		provider := &scriptedProvider{}
		uc := newTestUseCase(&fakeStore{}, provider)

		env, err := uc.Process(ctx, chat.ChatInput{Message: "where are my orders", Mode: model.ModeOrders})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(strings.ToLower(env.Answer), "order id") {
			t.Errorf("expected prompt for a lookup key: %q", env.Answer)
		}
		if len(env.References) != 0 {
			t.Errorf("no tool ran, references must be empty: %v", env.References)
		}
		if provider.calls != 0 {
			t.Errorf("orders mode must never call the model, got %d call(s)", provider.calls)
		}
	})
}
