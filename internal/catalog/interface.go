package catalog

import "parts-support-chat/internal/model"

// Store is the read-only view over the catalogs loaded at startup. All
// lookups are exact-match unless stated otherwise; implementations must be
// safe for concurrent use without locking (the collections are never written
// after load).
type Store interface {
	// ProductByPartID returns the product with the given part id, matched
	// case-insensitively.
	ProductByPartID(id string) (model.Product, bool)

	// SearchProducts returns up to limit products whose title or description
	// contains the query as a case-insensitive substring, in catalog order.
	SearchProducts(query string, limit int) []model.Product

	// OrderByID returns the order with the given id, matched case-insensitively.
	OrderByID(id string) (model.Order, bool)

	// OrdersByEmail returns up to limit orders owned by the email (matched
	// case-insensitively), sorted by created_at descending.
	OrdersByEmail(email string, limit int) []model.Order

	// ModelByTag returns the appliance model with the given tag, matched
	// case-insensitively.
	ModelByTag(tag string) (model.ApplianceModel, bool)

	// FAQs returns all FAQ records.
	FAQs() []model.FAQ
}
