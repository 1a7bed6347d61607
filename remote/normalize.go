package remote

import (
	"strconv"
	"strings"
	"time"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// rawRecord is a loosely-typed backend record. The backend is inconsistent
// about numeric ids vs string ids and occasionally sends numbers as
// strings, so every field goes through a tolerant accessor.
type rawRecord map[string]any

func (r rawRecord) str(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			return strconv.Itoa(t)
		case bool:
			return strconv.FormatBool(t)
		}
	}
	return ""
}

func (r rawRecord) num(keys ...string) float64 {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t
		case int:
			return float64(t)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func (r rawRecord) integer(keys ...string) int {
	return int(r.num(keys...))
}

func (r rawRecord) when(keys ...string) time.Time {
	for _, k := range keys {
		s, ok := r[k].(string)
		if !ok {
			continue
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func (r rawRecord) list(key string) []rawRecord {
	v, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]rawRecord, 0, len(v))
	for _, e := range v {
		if m, ok := e.(map[string]any); ok {
			out = append(out, rawRecord(m))
		}
	}
	return out
}

func normalizeCartItem(r rawRecord) models.CartItem {
	qty := r.integer("qty", "quantity")
	if qty < 1 {
		qty = 1
	}
	return models.CartItem{
		ID:    r.str("product_id", "productId", "id"),
		Title: r.str("title", "name"),
		Price: r.num("price", "sale_price"),
		Qty:   qty,
		Image: r.str("image", "image_url"),
	}
}

func normalizeWishlistItem(r rawRecord) models.WishlistItem {
	return models.WishlistItem{
		ID:    r.str("product_id", "productId", "id"),
		Title: r.str("title", "name"),
		Price: r.num("price", "sale_price"),
		Image: r.str("image", "image_url"),
	}
}

func normalizeProduct(r rawRecord) models.Product {
	return models.Product{
		ID:          r.str("id", "product_id", "_id"),
		Title:       r.str("title", "name"),
		Price:       r.num("price", "sale_price"),
		Image:       r.str("image", "image_url"),
		Gender:      r.str("gender"),
		Color:       r.str("color", "colour"),
		Category:    r.str("category"),
		Description: r.str("description"),
	}
}

func normalizeProducts(raw []rawRecord) []models.Product {
	products := make([]models.Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, normalizeProduct(r))
	}
	return products
}

func normalizeOrder(r rawRecord) models.Order {
	items := make([]models.OrderItem, 0)
	for _, ri := range r.list("items") {
		qty := ri.integer("qty", "quantity")
		if qty < 1 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			ProductID: ri.str("product_id", "productId", "id"),
			Title:     ri.str("title", "name"),
			Image:     ri.str("image", "image_url"),
			Price:     ri.num("price", "sale_price"),
			Quantity:  qty,
		})
	}
	return models.Order{
		ID:          r.str("id", "order_id", "_id"),
		Status:      models.OrderStatus(strings.ToLower(r.str("status"))),
		TotalAmount: r.num("total_amount", "total"),
		CreatedAt:   r.when("created_at", "createdAt", "date"),
		Items:       items,
	}
}
