package sessionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/localstore"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/session"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// POST /session/login
// Stores the identity markers handed out by the backend's auth flow. The
// watcher notices the change and drives the container's clear/reload; the
// handler itself never touches cart state.
func Login(store *localstore.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req LoginRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := store.SetIdentity(models.Identity{Email: req.Email, Token: req.Token}); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store session"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Logged in", "email": req.Email})
	}
}

// POST /session/logout
func Logout(store *localstore.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := store.ClearIdentity(); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /session
func GetSession(manager *session.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := manager.CurrentIdentity()
		ctx.JSON(http.StatusOK, gin.H{
			"email":     id.Email,
			"anonymous": id.Anonymous(),
		})
	}
}
