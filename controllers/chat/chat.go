package chatControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/assistant"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/remote"
)

type ChatRequest struct {
	Message string `json:"message"`
}

// POST /chat
func PostMessage(engine *assistant.Engine) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req ChatRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		replies := engine.HandleMessage(ctx.Request.Context(), req.Message)
		ctx.JSON(http.StatusOK, gin.H{"messages": replies})
	}
}

// GET /chat/transcript
func GetTranscript(engine *assistant.Engine) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"messages": engine.Transcript()})
	}
}

// POST /chat/reset
func ResetConversation(engine *assistant.Engine) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		engine.Reset()
		ctx.JSON(http.StatusOK, gin.H{"message": "Conversation reset"})
	}
}

// GET /chat/history
// The backend-side transcript, mirrored there for logged-in users.
func GetHistory(client *remote.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		messages, err := client.GetChatHistory(ctx.Request.Context())
		if err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch chat history"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"messages": messages})
	}
}
