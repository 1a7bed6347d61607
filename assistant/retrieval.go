package assistant

import (
	"context"
	"fmt"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// showCart renders the live remote cart as product cards. It deliberately
// bypasses the local state container: the conversation shows what the
// backend has, not the session cache.
func (e *Engine) showCart(ctx context.Context) []models.ConversationMessage {
	if e.identity().Anonymous() {
		return []models.ConversationMessage{e.replyTyped(authRequiredText, models.MessageTypeAuthRequired)}
	}
	items, err := e.remote.GetCart(ctx)
	if err != nil {
		return []models.ConversationMessage{e.replyTyped("I couldn't fetch your cart right now. Please try again.", models.MessageTypeError)}
	}
	if len(items) == 0 {
		return []models.ConversationMessage{e.replyTyped("Your cart is empty. Want me to find you something?", models.MessageTypeEmpty)}
	}

	state := models.CartState{Items: items}
	cards := make([]models.Product, 0, len(items))
	for _, it := range items {
		cards = append(cards, models.Product{ID: it.ID, Title: it.Title, Price: it.Price, Image: it.Image})
	}
	return []models.ConversationMessage{
		e.replyProducts(fmt.Sprintf("You have %d items in your cart, totalling ₹%.0f:", state.Count(), state.Total()), cards),
	}
}

// showWishlist renders the live remote wishlist.
func (e *Engine) showWishlist(ctx context.Context) []models.ConversationMessage {
	if e.identity().Anonymous() {
		return []models.ConversationMessage{e.replyTyped(authRequiredText, models.MessageTypeAuthRequired)}
	}
	items, err := e.remote.GetWishlist(ctx)
	if err != nil {
		return []models.ConversationMessage{e.replyTyped("I couldn't fetch your wishlist right now. Please try again.", models.MessageTypeError)}
	}
	if len(items) == 0 {
		return []models.ConversationMessage{e.replyTyped("Your wishlist is empty. Save products you like and they'll show up here.", models.MessageTypeEmpty)}
	}

	cards := make([]models.Product, 0, len(items))
	for _, it := range items {
		cards = append(cards, models.Product{ID: it.ID, Title: it.Title, Price: it.Price, Image: it.Image})
	}
	return []models.ConversationMessage{
		e.replyProducts(fmt.Sprintf("You have %d items saved in your wishlist:", len(items)), cards),
	}
}
