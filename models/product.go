package models

// Product is a catalog record normalized at the remote client boundary.
// Gender, Color and Category are the three attributes the guided-flow
// strict filter matches on.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Gender      string  `json:"gender,omitempty"`
	Color       string  `json:"color,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}
