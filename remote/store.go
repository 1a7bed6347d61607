package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// GetCart fetches the authenticated user's cart.
func (c *Client) GetCart(ctx context.Context) ([]models.CartItem, error) {
	var resp struct {
		Items []rawRecord `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &resp, true); err != nil {
		return nil, err
	}
	items := make([]models.CartItem, 0, len(resp.Items))
	for _, raw := range resp.Items {
		items = append(items, normalizeCartItem(raw))
	}
	return items, nil
}

// AddCartItem adds (or replaces, per backend semantics) one cart line.
func (c *Client) AddCartItem(ctx context.Context, item models.CartItem) error {
	body := map[string]any{
		"product_id": item.ID,
		"title":      item.Title,
		"price":      item.Price,
		"quantity":   item.Qty,
		"image":      item.Image,
	}
	return c.do(ctx, http.MethodPost, "/cart/items", nil, body, nil, true)
}

// ClearCart empties the remote cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil, nil, true)
}

// GetWishlist fetches the authenticated user's wishlist.
func (c *Client) GetWishlist(ctx context.Context) ([]models.WishlistItem, error) {
	var resp struct {
		Items []rawRecord `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, nil, &resp, true); err != nil {
		return nil, err
	}
	items := make([]models.WishlistItem, 0, len(resp.Items))
	for _, raw := range resp.Items {
		items = append(items, normalizeWishlistItem(raw))
	}
	return items, nil
}

func (c *Client) AddWishlistItem(ctx context.Context, item models.WishlistItem) error {
	body := map[string]any{
		"product_id": item.ID,
		"title":      item.Title,
		"price":      item.Price,
		"image":      item.Image,
	}
	return c.do(ctx, http.MethodPost, "/wishlist/items", nil, body, nil, true)
}

func (c *Client) RemoveWishlistItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/items/"+url.PathEscape(id), nil, nil, nil, true)
}

// GetOrders fetches the user's order history, newest first per backend.
func (c *Client) GetOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Orders []rawRecord `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &resp, true); err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(resp.Orders))
	for _, raw := range resp.Orders {
		orders = append(orders, normalizeOrder(raw))
	}
	return orders, nil
}

// CancelOrder requests cancellation with an optional free-text reason.
func (c *Client) CancelOrder(ctx context.Context, id, reason string) error {
	body := map[string]any{"reason": reason}
	return c.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(id)+"/cancel", nil, body, nil, true)
}
