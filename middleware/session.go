package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/session"
)

// RequireSession gates routes that only make sense for a logged-in user.
// The backend still enforces auth on its side; this just fails fast with a
// clear message instead of relaying a 401.
func RequireSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := manager.CurrentIdentity()
		if id.Anonymous() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
			c.Abort()
			return
		}
		c.Set("user_email", id.Email)
		c.Next()
	}
}
