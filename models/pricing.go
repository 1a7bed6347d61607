package models

const (
	// FreeDeliveryThreshold is exclusive: an order must exceed it to ship free.
	FreeDeliveryThreshold = 999.0
	DeliveryFee           = 50.0
)

// DeliveryCharge returns the delivery fee for a cart subtotal.
func DeliveryCharge(subtotal float64) float64 {
	if subtotal > FreeDeliveryThreshold {
		return 0
	}
	return DeliveryFee
}

// OrderSummary is the checkout math for the current cart.
type OrderSummary struct {
	Subtotal       float64 `json:"subtotal"`
	DeliveryCharge float64 `json:"delivery_charge"`
	TotalAmount    float64 `json:"total_amount"`
}

// Summarize computes the order summary for a subtotal.
func Summarize(subtotal float64) OrderSummary {
	charge := DeliveryCharge(subtotal)
	return OrderSummary{
		Subtotal:       subtotal,
		DeliveryCharge: charge,
		TotalAmount:    subtotal + charge,
	}
}
