package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/store"
)

type CartItemInput struct {
	ID    string  `json:"id" binding:"required"`
	Title string  `json:"title" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
	Qty   int     `json:"qty" binding:"required,min=1"`
	Image string  `json:"image"`
}

// GET /cart
func GetCart(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		state := c.Cart()
		ctx.JSON(http.StatusOK, gin.H{
			"items": state.Items,
			"count": state.Count(),
			"total": state.Total(),
		})
	}
}

// POST /cart/items
func AddCartItem(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input CartItemInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item := models.CartItem{
			ID:    input.ID,
			Title: input.Title,
			Price: input.Price,
			Qty:   input.Qty,
			Image: input.Image,
		}
		if err := c.AddToCart(ctx.Request.Context(), item); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{"count": c.Count(), "total": c.Total()})
	}
}

// DELETE /cart/items/:id
func RemoveCartItem(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.RemoveFromCart(ctx.Request.Context(), ctx.Param("id"))
		ctx.JSON(http.StatusOK, gin.H{"message": "Cart item removed", "count": c.Count()})
	}
}

// POST /cart/items/:id/increment
func IncrementCartItem(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.IncrementQuantity(ctx.Request.Context(), ctx.Param("id"))
		ctx.JSON(http.StatusOK, gin.H{"count": c.Count(), "total": c.Total()})
	}
}

// POST /cart/items/:id/decrement
func DecrementCartItem(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.DecrementQuantity(ctx.Request.Context(), ctx.Param("id"))
		ctx.JSON(http.StatusOK, gin.H{"count": c.Count(), "total": c.Total()})
	}
}

// DELETE /cart
func ClearCart(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.ClearCart(ctx.Request.Context())
		ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart/summary
func GetCartSummary(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, models.Summarize(c.Total()))
	}
}

// GET /notices
func GetNotices(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"notices": c.Notices()})
	}
}
