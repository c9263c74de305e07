package file

import (
	"strings"

	"parts-support-chat/internal/model"
)

// ProductByPartID returns the product with the given part id (case-insensitive).
func (s *Store) ProductByPartID(id string) (model.Product, bool) {
	p, ok := s.productsByID[strings.ToUpper(strings.TrimSpace(id))]
	return p, ok
}

// SearchProducts returns up to limit products whose title or description
// contains the query as a case-insensitive substring.
func (s *Store) SearchProducts(query string, limit int) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var hits []model.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			hits = append(hits, p)
			if len(hits) >= limit {
				break
			}
		}
	}
	return hits
}

// OrderByID returns the order with the given id (case-insensitive).
func (s *Store) OrderByID(id string) (model.Order, bool) {
	o, ok := s.ordersByID[strings.ToUpper(strings.TrimSpace(id))]
	return o, ok
}

// OrdersByEmail returns up to limit orders for the email, most recent first.
func (s *Store) OrdersByEmail(email string, limit int) []model.Order {
	bucket := s.ordersByEmail[strings.ToLower(strings.TrimSpace(email))]
	if limit > 0 && len(bucket) > limit {
		bucket = bucket[:limit]
	}
	out := make([]model.Order, len(bucket))
	copy(out, bucket)
	return out
}

// ModelByTag returns the appliance model with the given tag (case-insensitive).
func (s *Store) ModelByTag(tag string) (model.ApplianceModel, bool) {
	m, ok := s.modelsByTag[strings.ToUpper(strings.TrimSpace(tag))]
	return m, ok
}

// FAQs returns all FAQ records.
func (s *Store) FAQs() []model.FAQ {
	return s.faqs
}
