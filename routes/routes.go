package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/assistant"
	cartControllers "github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/controllers/cart"
	catalogControllers "github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/controllers/catalog"
	chatControllers "github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/controllers/chat"
	checkoutControllers "github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/controllers/checkout"
	orderControllers "github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/controllers/orders"
	sessionControllers "github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/controllers/session"
	wishlistControllers "github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/controllers/wishlist"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/events"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/localstore"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/middleware"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/remote"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/session"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/store"
)

// Deps is everything the route groups need, wired once in main.
type Deps struct {
	Container *store.Container
	Local     *localstore.Store
	Remote    *remote.Client
	Manager   *session.Manager
	Engine    *assistant.Engine
	Hub       *events.Hub
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	identity := d.Manager.CurrentIdentity

	// ──────────────── Session ────────────────
	sessionGroup := r.Group("/session")
	{
		sessionGroup.POST("/login", sessionControllers.Login(d.Local))
		sessionGroup.POST("/logout", sessionControllers.Logout(d.Local))
		sessionGroup.GET("/", sessionControllers.GetSession(d.Manager))
	}

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(d.Container))
		cartGroup.POST("/items", cartControllers.AddCartItem(d.Container))
		cartGroup.DELETE("/items/:id", cartControllers.RemoveCartItem(d.Container))
		cartGroup.POST("/items/:id/increment", cartControllers.IncrementCartItem(d.Container))
		cartGroup.POST("/items/:id/decrement", cartControllers.DecrementCartItem(d.Container))
		cartGroup.DELETE("/", cartControllers.ClearCart(d.Container))
		cartGroup.GET("/summary", cartControllers.GetCartSummary(d.Container))
	}
	r.GET("/notices", cartControllers.GetNotices(d.Container))

	// ──────────────── Wishlist ────────────────
	wishlistGroup := r.Group("/wishlist")
	{
		wishlistGroup.GET("/", wishlistControllers.GetWishlist(d.Container))
		wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlist(d.Container))
		wishlistGroup.DELETE("/:id", wishlistControllers.RemoveWishlistItem(d.Container))
	}

	// ──────────────── Checkout ────────────────
	r.POST("/checkout", checkoutControllers.Checkout(d.Container))

	// ──────────────── Orders (login required) ────────────────
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.RequireSession(d.Manager))
	{
		orderGroup.GET("/", orderControllers.GetOrders(d.Remote, identity))
		orderGroup.POST("/:id/cancel", orderControllers.CancelOrder(d.Remote, identity, d.Hub))
		orderGroup.GET("/export", orderControllers.ExportOrdersToExcel(d.Remote, identity))
	}
	// websocket endpoint for real-time order status updates
	r.GET("/orders/ws", d.Hub.HandleWS)

	// ──────────────── Browse Products ────────────────
	r.GET("/products", catalogControllers.GetProducts(d.Remote))
	r.GET("/products/search", catalogControllers.SearchProducts(d.Remote))
	r.GET("/calendar/events", catalogControllers.GetCalendarEvents(d.Remote))

	// ──────────────── Shopping Assistant ────────────────
	chatGroup := r.Group("/chat")
	{
		chatGroup.POST("/", chatControllers.PostMessage(d.Engine))
		chatGroup.GET("/transcript", chatControllers.GetTranscript(d.Engine))
		chatGroup.GET("/history", chatControllers.GetHistory(d.Remote))
		chatGroup.POST("/reset", chatControllers.ResetConversation(d.Engine))
	}
}
