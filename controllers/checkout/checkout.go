package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/store"
)

// POST /checkout
// Order placement itself happens on the backend; this endpoint closes out
// the client side of a successful checkout: it returns the final summary
// (delivery is free only above the threshold) and clears the cart.
func Checkout(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		state := c.Cart()
		if len(state.Items) == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		summary := models.Summarize(state.Total())
		c.ClearCart(ctx.Request.Context())

		ctx.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully",
			"summary": summary,
			"items":   state.Items,
		})
	}
}
