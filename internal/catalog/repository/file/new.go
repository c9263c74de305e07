package file

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"parts-support-chat/internal/catalog"
	"parts-support-chat/internal/model"
	pkgLog "parts-support-chat/pkg/log"
)

// Store is the file-backed catalog store. All collections are loaded once in
// New and never mutated afterwards.
type Store struct {
	l pkgLog.Logger

	products      []model.Product
	productsByID  map[string]model.Product
	ordersByID    map[string]model.Order
	ordersByEmail map[string][]model.Order
	modelsByTag   map[string]model.ApplianceModel
	faqs          []model.FAQ
}

var _ catalog.Store = (*Store)(nil)

// New loads the catalog data files from dataDir and builds the lookup indexes.
// products.json and orders.json are required; models.json and faqs.json are
// optional and logged when absent.
func New(l pkgLog.Logger, dataDir string) (*Store, error) {
	ctx := context.Background()

	s := &Store{
		l:             l,
		productsByID:  make(map[string]model.Product),
		ordersByID:    make(map[string]model.Order),
		ordersByEmail: make(map[string][]model.Order),
		modelsByTag:   make(map[string]model.ApplianceModel),
	}

	products, err := loadProducts(dataDir)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	s.products = products
	for _, p := range products {
		s.productsByID[strings.ToUpper(p.PartID)] = p
	}

	orders, err := loadOrders(dataDir)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	for _, o := range orders {
		s.ordersByID[o.OrderID] = o
		if o.Email != "" {
			s.ordersByEmail[o.Email] = append(s.ordersByEmail[o.Email], o)
		}
	}
	// Most recent first; created_at strings compare lexicographically.
	for email := range s.ordersByEmail {
		bucket := s.ordersByEmail[email]
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].CreatedAt > bucket[j].CreatedAt
		})
	}

	models, err := loadModels(dataDir)
	if err != nil {
		l.Warnf(ctx, "catalog: models.json not loaded: %v", err)
	}
	for _, m := range models {
		s.modelsByTag[strings.ToUpper(m.Model)] = m
	}

	faqs, err := loadFAQs(dataDir)
	if err != nil {
		l.Warnf(ctx, "catalog: faqs.json not loaded: %v", err)
	}
	s.faqs = faqs

	l.Infof(ctx, "catalog: loaded %d products, %d orders, %d models, %d faqs",
		len(products), len(orders), len(models), len(faqs))

	return s, nil
}
