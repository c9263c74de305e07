package usecase

import (
	"context"
	"fmt"
	"strings"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
)

// resolveOrders handles every orders-mode request deterministically. The
// model is never consulted here: an order id wins over an email, and with
// neither key present the user is asked for one.
func (uc *implUseCase) resolveOrders(ctx context.Context, ents entities) chat.Envelope {
	if ents.orderID != "" {
		return uc.resolveOrderByID(ctx, ents.orderID)
	}
	if ents.email != "" {
		return uc.resolveOrdersByEmail(ctx, ents.email)
	}

	uc.l.Infof(ctx, "%s: orders request without order id or email", LogPrefixProcess)
	return chat.Envelope{
		Answer:     "I can look up your orders. Please share an order id (like ORD1234) or the email address the order was placed with.",
		FollowUp:   []string{"Look up an order by its id", "List recent orders for an email"},
		Products:   []chat.ProductCard{},
		Orders:     []model.Order{},
		References: []string{},
	}
}

func (uc *implUseCase) resolveOrderByID(ctx context.Context, orderID string) chat.Envelope {
	o, ok := uc.store.OrderByID(orderID)
	if !ok {
		uc.l.Infof(ctx, "%s: order %s not found", LogPrefixProcess, orderID)
		return chat.Envelope{
			Answer:     fmt.Sprintf("Sorry, I couldn't find an order %s. If you share the email address the order was placed with, I can look it up that way.", orderID),
			FollowUp:   []string{"List recent orders for an email"},
			Products:   []chat.ProductCard{},
			Orders:     []model.Order{},
			References: refStrings(toolRef(ToolOrderByID)),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Order %s is %s.", o.OrderID, o.Status)
	if o.CreatedAt != "" {
		fmt.Fprintf(&b, " Placed %s.", o.CreatedAt)
	}
	if o.Email != "" {
		fmt.Fprintf(&b, " Email on file: %s.", o.Email)
	}
	if len(o.Items) > 0 {
		b.WriteString("\nItems:")
		for _, it := range o.Items {
			b.WriteString("\n- ")
			b.WriteString(it.Title)
			if it.PartID != "" {
				fmt.Fprintf(&b, " (%s)", it.PartID)
			}
			fmt.Fprintf(&b, " x%d", it.Quantity)
			if it.Price > 0 {
				fmt.Fprintf(&b, " at $%.2f", it.Price)
			}
		}
	}
	if total := o.Total(); total > 0 {
		fmt.Fprintf(&b, "\nTotal: $%.2f", total)
	}

	return chat.Envelope{
		Answer:     b.String(),
		FollowUp:   []string{"Check the status of another order", "Find a replacement part"},
		Products:   []chat.ProductCard{},
		Orders:     []model.Order{o},
		References: refStrings(toolRef(ToolOrderByID)),
	}
}

func (uc *implUseCase) resolveOrdersByEmail(ctx context.Context, email string) chat.Envelope {
	orders := uc.store.OrdersByEmail(email, OrdersDataCap)
	if len(orders) == 0 {
		uc.l.Infof(ctx, "%s: no orders for email", LogPrefixProcess)
		return chat.Envelope{
			Answer:     fmt.Sprintf("Sorry, I couldn't find any orders for %s. Double-check the address, or share an order id instead.", email),
			FollowUp:   []string{"Look up an order by its id"},
			Products:   []chat.ProductCard{},
			Orders:     []model.Order{},
			References: refStrings(toolRef(ToolOrderHistory)),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d order(s) for %s. Most recent first:", len(orders), email)
	for i, o := range orders {
		if i >= OrdersSummaryCap {
			fmt.Fprintf(&b, "\n...and %d more.", len(orders)-OrdersSummaryCap)
			break
		}
		fmt.Fprintf(&b, "\n- %s • %s • %s • %d item(s)", o.OrderID, o.Status, o.CreatedAt, len(o.Items))
	}

	return chat.Envelope{
		Answer:     b.String(),
		FollowUp:   []string{"Show the details of one of these orders"},
		Products:   []chat.ProductCard{},
		Orders:     orders,
		References: refStrings(toolRef(ToolOrderHistory)),
	}
}
