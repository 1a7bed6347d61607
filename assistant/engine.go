// Package assistant is the conversational shopping assistant: a rule-driven
// engine that classifies free-text intents, walks users through the Face
// Tone and Body Fit guided flows, and renders live cart/wishlist/order data
// into the conversation transcript.
package assistant

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/remote"
)

// RemoteAPI is the backend surface the assistant reads from. All data it
// renders is fetched live, never from the state container's cache.
type RemoteAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	SearchNatural(ctx context.Context, query string, override *remote.Filters) (*remote.NaturalSearchResult, error)
	SearchKeyword(ctx context.Context, query, category string) ([]models.Product, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	CancelOrder(ctx context.Context, id, reason string) error
	GetCart(ctx context.Context) ([]models.CartItem, error)
	GetWishlist(ctx context.Context) ([]models.WishlistItem, error)
	SaveChatMessage(ctx context.Context, msg models.ConversationMessage) error
}

// StatusPublisher receives order-status-changed events (e.g. after a
// successful cancellation).
type StatusPublisher interface {
	PublishOrderStatus(ev models.OrderStatusChange)
}

// followUp remembers the last product search so a refinement like
// "under 1000" can reapply it with new price bounds.
type followUp struct {
	query   string
	filters remote.Filters
}

// Engine drives one conversation. The transcript is append-only; exactly
// one guided flow can be active at a time.
type Engine struct {
	remote   RemoteAPI
	identity func() models.Identity
	events   StatusPublisher
	now      func() time.Time

	mu              sync.Mutex
	transcript      []models.ConversationMessage
	flow            models.FlowState
	followUp        *followUp
	pendingCancelID string
	sizeAskPending  bool
	sizeAskPosition string
}

func New(api RemoteAPI, identity func() models.Identity, events StatusPublisher) *Engine {
	return &Engine{
		remote:   api,
		identity: identity,
		events:   events,
		now:      time.Now,
		flow:     models.FlowState{Kind: models.FlowNone},
	}
}

// Transcript returns a copy of the conversation so far.
func (e *Engine) Transcript() []models.ConversationMessage {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.ConversationMessage, len(e.transcript))
	copy(out, e.transcript)
	return out
}

// Reset clears the transcript, any active flow, and all remembered context.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transcript = nil
	e.flow = e.flow.Reset()
	e.followUp = nil
	e.pendingCancelID = ""
	e.sizeAskPending = false
	e.sizeAskPosition = ""
}

// HandleMessage processes one user message and returns the assistant's
// reply messages. Both sides are appended to the transcript.
func (e *Engine) HandleMessage(ctx context.Context, text string) []models.ConversationMessage {
	text = strings.TrimSpace(text)

	var turn []models.ConversationMessage
	if text != "" {
		turn = append(turn, models.ConversationMessage{
			ID:        uuid.NewString(),
			Text:      text,
			IsUser:    true,
			Timestamp: e.now(),
		})
	}

	e.mu.Lock()
	for i := range turn {
		e.appendLocked(turn[i])
	}
	e.mu.Unlock()

	replies := e.dispatch(ctx, text)

	e.mu.Lock()
	for i := range replies {
		e.appendLocked(replies[i])
	}
	e.mu.Unlock()

	// Both sides of the turn go to the backend history, so the remote
	// transcript reads as a conversation, not a monologue.
	e.mirror(ctx, append(turn, replies...))
	return replies
}

func (e *Engine) dispatch(ctx context.Context, text string) []models.ConversationMessage {
	if text == "" {
		return []models.ConversationMessage{e.welcome()}
	}
	msg := strings.ToLower(text)

	// Pending two-step interactions come first: they consume the reply to
	// a question the assistant just asked.
	e.mu.Lock()
	pendingCancel := e.pendingCancelID
	sizeAsk := e.sizeAskPending
	flow := e.flow
	e.mu.Unlock()

	if pendingCancel != "" {
		return e.resolveCancellation(ctx, pendingCancel, text)
	}
	if sizeAsk {
		return e.resolveSizeClarification(msg)
	}

	if containsAny(msg, resetWords...) {
		e.mu.Lock()
		e.flow = e.flow.Reset()
		e.followUp = nil
		e.mu.Unlock()
		return []models.ConversationMessage{e.welcome()}
	}

	// Flow triggers win over an active flow: asking for the other flow
	// mid-flow abandons the current one and starts fresh.
	if containsAny(msg, faceToneTriggers...) {
		return e.startFaceTone()
	}
	if containsAny(msg, bodyFitTriggers...) {
		return e.startBodyFit()
	}

	if flow.Kind != models.FlowNone {
		return e.advanceFlow(ctx, flow, text)
	}

	return e.classify(ctx, msg, text)
}

func (e *Engine) appendLocked(msg models.ConversationMessage) {
	e.transcript = append(e.transcript, msg)
}

// mirror saves new transcript entries to the backend chat history when
// logged in. Best-effort: a failure is logged and forgotten.
func (e *Engine) mirror(ctx context.Context, replies []models.ConversationMessage) {
	if e.identity().Anonymous() {
		return
	}
	for _, msg := range replies {
		if err := e.remote.SaveChatMessage(ctx, msg); err != nil {
			log.Printf("⚠️ Failed to mirror chat message: %v", err)
			return
		}
	}
}

func (e *Engine) reply(text string) models.ConversationMessage {
	return models.ConversationMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: e.now(),
		Type:      models.MessageTypeText,
	}
}

func (e *Engine) replyTyped(text string, t models.MessageType) models.ConversationMessage {
	msg := e.reply(text)
	msg.Type = t
	return msg
}

func (e *Engine) replyOptions(text string, options []string) models.ConversationMessage {
	msg := e.replyTyped(text, models.MessageTypeOptions)
	msg.Options = options
	return msg
}

func (e *Engine) replyProducts(text string, products []models.Product) models.ConversationMessage {
	msg := e.replyTyped(text, models.MessageTypeProducts)
	msg.Products = products
	return msg
}

func (e *Engine) welcome() models.ConversationMessage {
	return e.replyOptions(
		"Hi! I can find products, suggest colors for your skin tone, recommend fits for your body shape, and look up your cart, wishlist and orders. What would you like to do?",
		[]string{"Face Tone", "Body Fit", "My Orders", "My Cart", "My Wishlist"},
	)
}
