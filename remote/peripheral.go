package remote

import (
	"context"
	"net/http"
	"time"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// CalendarEvent is a promotional/sale calendar entry shown by the
// assistant's peripheral features.
type CalendarEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// GetChatHistory loads the user's saved assistant transcript.
func (c *Client) GetChatHistory(ctx context.Context) ([]models.ConversationMessage, error) {
	var resp struct {
		Messages []models.ConversationMessage `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/chat/history", nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// SaveChatMessage appends one transcript message to the backend history.
// Callers treat failures as best-effort.
func (c *Client) SaveChatMessage(ctx context.Context, msg models.ConversationMessage) error {
	return c.do(ctx, http.MethodPost, "/chat/history", nil, msg, nil, true)
}

// GetCalendarEvents lists upcoming store events.
func (c *Client) GetCalendarEvents(ctx context.Context) ([]CalendarEvent, error) {
	var resp struct {
		Events []CalendarEvent `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, "/calendar/events", nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Events, nil
}
