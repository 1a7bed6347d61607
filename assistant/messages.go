package assistant

// Static templated responses. The no-match text is deliberately fixed: the
// strict filter never relaxes, so the message must say so plainly.
const (
	returnPolicyText = "You can return or exchange any unworn item within 14 days of delivery. " +
		"Start a return from My Orders and we'll arrange a free pickup."

	paymentInfoText = "We accept UPI, credit and debit cards, net banking, and cash on delivery. " +
		"Card payments are processed securely; COD is available on orders up to ₹5,000."

	refundPolicyText = "Refunds go back to your original payment method within 5-7 business days " +
		"of the return passing quality check. COD refunds arrive as store credit."

	authRequiredText = "You'll need to log in first — I can only fetch your personal data once you're signed in."

	noMatchText = "No products found for this exact combination. I don't want to guess with " +
		"close-enough matches — try a different color or category."

	searchFailedText = "Something went wrong while searching. Please try again in a moment."

	cancelConfirmText = "Your order has been cancelled. If you'd already paid, the refund will " +
		"reach you within 5-7 business days."

	cancelFailedText = "I couldn't cancel that order. It may have already shipped — please check My Orders."
)
