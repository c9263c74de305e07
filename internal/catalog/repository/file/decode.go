package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"parts-support-chat/internal/model"
)

// diskOrder mirrors the order records on disk, which mix two naming styles
// (order_id vs orderId, created_at vs orderDate, part_id vs partId, name vs
// title). toModel coalesces the aliases into the canonical model.Order.
type diskOrder struct {
	OrderID    string          `json:"order_id"`
	OrderIDAlt string          `json:"orderId"`
	Email      string          `json:"email"`
	CreatedAt  string          `json:"created_at"`
	OrderDate  string          `json:"orderDate"`
	Status     string          `json:"status"`
	Items      []diskOrderItem `json:"items"`
}

type diskOrderItem struct {
	PartID      string  `json:"part_id"`
	PartIDAlt   string  `json:"partId"`
	Title       string  `json:"title"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	CreatedDate string  `json:"created_date"`
}

func (d diskOrder) toModel() model.Order {
	o := model.Order{
		OrderID:   firstNonEmpty(d.OrderID, d.OrderIDAlt),
		Email:     d.Email,
		CreatedAt: firstNonEmpty(d.CreatedAt, d.OrderDate),
		Status:    d.Status,
	}
	for _, it := range d.Items {
		o.Items = append(o.Items, model.OrderItem{
			PartID:      firstNonEmpty(it.PartID, it.PartIDAlt),
			Title:       firstNonEmpty(it.Title, it.Name),
			Quantity:    it.Quantity,
			Price:       it.Price,
			CreatedDate: it.CreatedDate,
		})
	}
	return o.Normalize()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func loadProducts(dataDir string) ([]model.Product, error) {
	var products []model.Product
	if err := readJSON(filepath.Join(dataDir, "products.json"), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func loadOrders(dataDir string) ([]model.Order, error) {
	var raw []diskOrder
	if err := readJSON(filepath.Join(dataDir, "orders.json"), &raw); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(raw))
	for _, d := range raw {
		orders = append(orders, d.toModel())
	}
	return orders, nil
}

func loadModels(dataDir string) ([]model.ApplianceModel, error) {
	var models []model.ApplianceModel
	if err := readJSON(filepath.Join(dataDir, "models.json"), &models); err != nil {
		return nil, err
	}
	return models, nil
}

func loadFAQs(dataDir string) ([]model.FAQ, error) {
	var faqs []model.FAQ
	if err := readJSON(filepath.Join(dataDir, "faqs.json"), &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
