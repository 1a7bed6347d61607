package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

var orderIDPattern = regexp.MustCompile(`(?i)\border\s*#?\s*([a-z0-9-]+)|#([a-z0-9-]+)`)

var keepOrderWords = []string{"no", "keep", "keep it", "don't", "dont", "nevermind", "never mind", "leave it"}

// showOrders lists the user's orders. Requires a logged-in identity; no
// data access is attempted otherwise.
func (e *Engine) showOrders(ctx context.Context) []models.ConversationMessage {
	if e.identity().Anonymous() {
		return []models.ConversationMessage{e.replyTyped(authRequiredText, models.MessageTypeAuthRequired)}
	}
	orders, err := e.remote.GetOrders(ctx)
	if err != nil {
		return []models.ConversationMessage{e.replyTyped("I couldn't fetch your orders right now. Please try again.", models.MessageTypeError)}
	}
	if len(orders) == 0 {
		return []models.ConversationMessage{e.replyTyped("You haven't placed any orders yet.", models.MessageTypeEmpty)}
	}
	msg := e.replyTyped(fmt.Sprintf("You have %d orders:", len(orders)), models.MessageTypeOrders)
	msg.Orders = orders
	return []models.ConversationMessage{msg}
}

// orderDetail handles track/cancel requests. Cancellation never happens on
// the first message: the user is asked for a reason, and the cancel call is
// only made once they confirm with one.
func (e *Engine) orderDetail(ctx context.Context, msg string) []models.ConversationMessage {
	if e.identity().Anonymous() {
		return []models.ConversationMessage{e.replyTyped(authRequiredText, models.MessageTypeAuthRequired)}
	}

	if strings.Contains(msg, "cancel") {
		if id := extractOrderID(msg); id != "" {
			e.mu.Lock()
			e.pendingCancelID = id
			e.mu.Unlock()
			return []models.ConversationMessage{
				e.reply(fmt.Sprintf("To confirm cancelling order #%s, reply with a short reason — or say \"keep it\" to leave it as is.", id)),
			}
		}
		replies := e.showOrders(ctx)
		replies = append(replies, e.reply("Which one? Say \"cancel order <id>\" and I'll take care of it."))
		return replies
	}

	// Tracking: the order list already carries status, date and totals.
	return e.showOrders(ctx)
}

// resolveCancellation consumes the reply to the reason prompt.
func (e *Engine) resolveCancellation(ctx context.Context, orderID, text string) []models.ConversationMessage {
	e.mu.Lock()
	e.pendingCancelID = ""
	e.mu.Unlock()

	lowered := strings.ToLower(strings.TrimSpace(text))
	if containsAny(lowered, keepOrderWords...) {
		return []models.ConversationMessage{e.reply("No problem, your order stays as it is.")}
	}

	if err := e.remote.CancelOrder(ctx, orderID, text); err != nil {
		return []models.ConversationMessage{e.replyTyped(cancelFailedText, models.MessageTypeError)}
	}

	if e.events != nil {
		e.events.PublishOrderStatus(models.OrderStatusChange{
			OrderID:   orderID,
			NewStatus: string(models.OrderStatusCancelled),
			UserEmail: e.identity().Email,
			Timestamp: e.now(),
		})
	}
	return []models.ConversationMessage{e.reply(cancelConfirmText)}
}

func extractOrderID(msg string) string {
	m := orderIDPattern.FindStringSubmatch(msg)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}
