package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/store"
)

type WishlistItemInput struct {
	ID    string  `json:"id" binding:"required"`
	Title string  `json:"title" binding:"required"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// GET /wishlist
func GetWishlist(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		items := c.Wishlist()
		ctx.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
	}
}

// POST /wishlist/toggle
func ToggleWishlist(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input WishlistItemInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		c.ToggleWishlist(ctx.Request.Context(), models.WishlistItem{
			ID:    input.ID,
			Title: input.Title,
			Price: input.Price,
			Image: input.Image,
		})
		ctx.JSON(http.StatusOK, gin.H{"items": c.Wishlist()})
	}
}

// DELETE /wishlist/:id
func RemoveWishlistItem(c *store.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.RemoveFromWishlist(ctx.Request.Context(), ctx.Param("id"))
		ctx.JSON(http.StatusOK, gin.H{"message": "Wishlist item removed"})
	}
}
