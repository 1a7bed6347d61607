package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// Intent keyword sets. Classification walks these in priority order and
// the first match wins.
var (
	resetWords       = []string{"reset", "start over", "main menu", "restart"}
	faceToneTriggers = []string{"face tone", "skin tone", "complexion", "colors for my skin"}
	bodyFitTriggers  = []string{"body fit", "body shape", "body type", "fit for my body"}

	returnPolicyWords = []string{"return policy", "returns", "return", "exchange"}
	paymentWords      = []string{"payment", "cash on delivery", "cod", "upi", "emi", "pay with"}
	refundWords       = []string{"refund", "money back"}
	sizeGuideWords    = []string{"size guide", "size chart", "sizing", "what size", "which size"}

	cartWords       = []string{"my cart", "show cart", "view cart", "cart"}
	wishlistWords   = []string{"wishlist", "wish list", "saved items"}
	ordersListWords = []string{"my orders", "order history", "past orders", "orders"}

	orderDetailWords = []string{"track", "cancel", "where is my order", "order status"}

	colorVocabulary = []string{
		"red", "blue", "black", "white", "green", "grey", "gray", "pink",
		"yellow", "purple", "orange", "brown", "beige", "maroon", "navy",
	}
	categoryVocabulary = []string{
		"shirt", "t-shirt", "tshirt", "tee", "dress", "hoodie", "jeans",
		"trouser", "pant", "top", "kurta", "ethnic", "western", "co-ord",
		"coord", "bottom", "skirt", "jacket",
	}
	genderVocabulary = []string{"men", "women", "male", "female", "boys", "girls", "ladies", "gents"}
	priceVocabulary  = []string{"under", "below", "above", "over", "between", "price", "cheap", "budget", "affordable"}
)

var (
	priceBoundPattern   = regexp.MustCompile(`(?i)\b(under|below|less than|above|over|more than)\s*(?:rs\.?|₹|\$)?\s*(\d+)`)
	priceBetweenPattern = regexp.MustCompile(`(?i)\bbetween\s*(?:rs\.?|₹|\$)?\s*(\d+)\s*(?:and|to|-)\s*(?:rs\.?|₹|\$)?\s*(\d+)`)
)

func containsAny(msg string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

// classify routes a free-text message that is not part of a pending
// interaction or active flow. Priority: policy intents, retrieval intents,
// follow-up refinement, order detail, product search, default keyword
// search.
func (e *Engine) classify(ctx context.Context, msg, original string) []models.ConversationMessage {
	switch {
	case containsAny(msg, sizeGuideWords...):
		return e.sizeGuide(msg)
	case containsAny(msg, refundWords...):
		return []models.ConversationMessage{e.reply(refundPolicyText)}
	case containsAny(msg, returnPolicyWords...):
		return []models.ConversationMessage{e.reply(returnPolicyText)}
	case containsAny(msg, paymentWords...):
		return []models.ConversationMessage{e.reply(paymentInfoText)}
	case containsAny(msg, wishlistWords...):
		return e.showWishlist(ctx)
	case containsAny(msg, cartWords...):
		return e.showCart(ctx)
	case containsAny(msg, ordersListWords...):
		return e.showOrders(ctx)
	}

	if refined, ok := e.refineSearch(ctx, msg); ok {
		return refined
	}

	if containsAny(msg, orderDetailWords...) {
		return e.orderDetail(ctx, msg)
	}

	if matchesProductVocabulary(msg) {
		return e.naturalSearch(ctx, original)
	}

	// Default: drop any stale follow-up context, fall back to keyword search.
	e.mu.Lock()
	e.followUp = nil
	e.mu.Unlock()
	return e.keywordSearch(ctx, original)
}

func matchesProductVocabulary(msg string) bool {
	return containsAny(msg, colorVocabulary...) ||
		containsAny(msg, categoryVocabulary...) ||
		containsAny(msg, genderVocabulary...) ||
		containsAny(msg, priceVocabulary...)
}

// refineSearch handles "under/above/below N" follow-ups: the previous
// query is rerun with replaced (not stacked) price bounds.
func (e *Engine) refineSearch(ctx context.Context, msg string) ([]models.ConversationMessage, bool) {
	e.mu.Lock()
	prior := e.followUp
	e.mu.Unlock()
	if prior == nil {
		return nil, false
	}

	filters := prior.filters
	filters.MinPrice = nil
	filters.MaxPrice = nil

	if m := priceBetweenPattern.FindStringSubmatch(msg); m != nil {
		low, _ := strconv.ParseFloat(m[1], 64)
		high, _ := strconv.ParseFloat(m[2], 64)
		filters.MinPrice = &low
		filters.MaxPrice = &high
	} else if m := priceBoundPattern.FindStringSubmatch(msg); m != nil {
		bound, _ := strconv.ParseFloat(m[2], 64)
		switch strings.ToLower(m[1]) {
		case "under", "below", "less than":
			filters.MaxPrice = &bound
		default:
			filters.MinPrice = &bound
		}
	} else {
		return nil, false
	}

	result, err := e.remote.SearchNatural(ctx, prior.query, &filters)
	if err != nil {
		return []models.ConversationMessage{e.replyTyped(searchFailedText, models.MessageTypeError)}, true
	}

	e.mu.Lock()
	e.followUp = &followUp{query: prior.query, filters: filters}
	e.mu.Unlock()

	if len(result.Products) == 0 {
		return []models.ConversationMessage{e.replyTyped("Nothing matches that price range for \""+prior.query+"\".", models.MessageTypeEmpty)}, true
	}
	return []models.ConversationMessage{
		e.replyProducts(fmt.Sprintf("Here's \"%s\" again in that price range:", prior.query), result.Products),
	}, true
}

func (e *Engine) naturalSearch(ctx context.Context, query string) []models.ConversationMessage {
	result, err := e.remote.SearchNatural(ctx, query, nil)
	if err != nil {
		return []models.ConversationMessage{e.replyTyped(searchFailedText, models.MessageTypeError)}
	}

	e.mu.Lock()
	e.followUp = &followUp{query: query}
	e.mu.Unlock()

	if len(result.Products) == 0 {
		text := "I couldn't find anything for that. Try different words?"
		if result.Message != "" {
			text = result.Message
		}
		return []models.ConversationMessage{e.replyTyped(text, models.MessageTypeEmpty)}
	}

	text := fmt.Sprintf("Found %d products for you:", len(result.Products))
	if result.FallbackUsed && result.Message != "" {
		text = result.Message
	}
	return []models.ConversationMessage{e.replyProducts(text, result.Products)}
}

func (e *Engine) keywordSearch(ctx context.Context, query string) []models.ConversationMessage {
	products, err := e.remote.SearchKeyword(ctx, query, "")
	if err != nil {
		return []models.ConversationMessage{e.replyTyped(searchFailedText, models.MessageTypeError)}
	}
	if len(products) == 0 {
		return []models.ConversationMessage{e.replyTyped("I couldn't find anything for \""+query+"\".", models.MessageTypeEmpty)}
	}
	return []models.ConversationMessage{
		e.replyProducts(fmt.Sprintf("Here's what I found for \"%s\":", query), products),
	}
}
