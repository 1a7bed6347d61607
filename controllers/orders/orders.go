package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/events"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/remote"
)

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// Identity yields the current user; handlers gate on it instead of
// re-validating tokens (the backend enforces auth on its side too).
type Identity func() models.Identity

// GET /orders
func GetOrders(client *remote.Client, identity Identity) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if identity().Anonymous() {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to see your orders"})
			return
		}
		orders, err := client.GetOrders(ctx.Request.Context())
		if err != nil {
			if errors.Is(err, remote.ErrUnauthorized) {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to see your orders"})
				return
			}
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// POST /orders/:id/cancel
func CancelOrder(client *remote.Client, identity Identity, hub *events.Hub) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := identity()
		if id.Anonymous() {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to cancel an order"})
			return
		}
		orderID := ctx.Param("id")

		var req CancelOrderRequest
		_ = ctx.ShouldBindJSON(&req) // reason is optional

		if err := client.CancelOrder(ctx.Request.Context(), orderID, req.Reason); err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to cancel order"})
			return
		}

		hub.PublishOrderStatus(models.OrderStatusChange{
			OrderID:   orderID,
			NewStatus: string(models.OrderStatusCancelled),
			UserEmail: id.Email,
			Timestamp: time.Now(),
		})
		ctx.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}
