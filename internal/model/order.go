package model

import (
	"math"
	"strings"
)

// Order is the canonical order shape. Source records use inconsistent field
// names (order_id/orderId, created_at/orderDate, part_id/partId, name/title);
// the catalog repository coalesces those at decode time so every consumer
// sees only this shape.
type Order struct {
	OrderID   string      `json:"order_id"`
	Email     string      `json:"email,omitempty"`
	CreatedAt string      `json:"created_at"` // ISO-like timestamp string, ordered lexicographically
	Status    string      `json:"status"`
	Items     []OrderItem `json:"items"`
}

// OrderItem is a single line item of an order.
type OrderItem struct {
	PartID      string  `json:"part_id,omitempty"`
	Title       string  `json:"title"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	CreatedDate string  `json:"created_date,omitempty"`
}

// Normalize canonicalizes an order value: ids are trimmed and uppercased, the
// email lowercased, free-text fields trimmed. Normalize is idempotent:
// normalizing an already-normalized order yields the same value.
func (o Order) Normalize() Order {
	out := o
	out.OrderID = strings.ToUpper(strings.TrimSpace(o.OrderID))
	out.Email = strings.ToLower(strings.TrimSpace(o.Email))
	out.CreatedAt = strings.TrimSpace(o.CreatedAt)
	out.Status = strings.TrimSpace(o.Status)
	out.Items = make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		out.Items[i] = OrderItem{
			PartID:      strings.ToUpper(strings.TrimSpace(it.PartID)),
			Title:       strings.TrimSpace(it.Title),
			Quantity:    it.Quantity,
			Price:       it.Price,
			CreatedDate: strings.TrimSpace(it.CreatedDate),
		}
	}
	return out
}

// Total computes the order total as the sum of quantity × price over all
// items, rounded to 2 decimals.
func (o Order) Total() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += float64(it.Quantity) * it.Price
	}
	return math.Round(sum*100) / 100
}
