package models

// WishlistItem is a saved-for-later product. Membership is a set keyed by
// product id; there is no quantity concept.
type WishlistItem struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Image string  `json:"image,omitempty"`
	Price float64 `json:"price,omitempty"`
}
