package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/remote"
)

// GET /products
func GetProducts(client *remote.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		products, err := client.ListProducts(ctx.Request.Context())
		if err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /calendar/events
// Upcoming sales and store events, straight from the backend.
func GetCalendarEvents(client *remote.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		events, err := client.GetCalendarEvents(ctx.Request.Context())
		if err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch events"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"events": events})
	}
}

// GET /products/search?query=&category=
func SearchProducts(client *remote.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		query := ctx.Query("query")
		if query == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
			return
		}
		products, err := client.SearchKeyword(ctx.Request.Context(), query, ctx.Query("category"))
		if err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Search failed"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"products": products})
	}
}
