package models

// CartItem is one purchasable line in the cart. A cart holds at most one
// line per product id; Qty is always >= 1 (a line reaching zero is removed,
// never stored).
type CartItem struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
	Image string  `json:"image,omitempty"`
}

// CartState is the cart item list plus its derived aggregates. Count and
// Total are always recomputed from Items so they can never drift.
type CartState struct {
	Items []CartItem `json:"items"`
}

// Count returns the total number of units across all lines.
func (s CartState) Count() int {
	count := 0
	for _, item := range s.Items {
		count += item.Qty
	}
	return count
}

// Total returns the summed price of the cart.
func (s CartState) Total() float64 {
	total := 0.0
	for _, item := range s.Items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// Find returns the index of the line with the given product id, or -1.
func (s CartState) Find(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}
