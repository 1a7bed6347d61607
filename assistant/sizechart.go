package assistant

import (
	"regexp"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// Gender detection for the size guide. Women's terms are checked first
// because "women" contains "men".
var (
	womenPattern = regexp.MustCompile(`\b(women|woman|female|ladies|girls?)\b`)
	menPattern   = regexp.MustCompile(`\b(men|man|male|gents|boys?)\b`)

	topWearPattern    = regexp.MustCompile(`\b(shirts?|t-?shirts?|tops?|hoodies?|kurtas?|dress(es)?|jackets?)\b`)
	bottomWearPattern = regexp.MustCompile(`\b(jeans|pants?|trousers?|bottoms?|bottomwear|skirts?|shorts)\b`)
)

// The four static size tables, keyed by gender + garment position.
var sizeCharts = map[string]models.SizeChart{
	"men_top": {
		Title:   "Men's Top Wear (inches)",
		Columns: []string{"Size", "Chest", "Shoulder", "Length"},
		Rows: [][]string{
			{"S", "38", "17", "27"},
			{"M", "40", "18", "28"},
			{"L", "42", "19", "29"},
			{"XL", "44", "20", "30"},
			{"XXL", "46", "21", "31"},
		},
	},
	"men_bottom": {
		Title:   "Men's Bottom Wear (inches)",
		Columns: []string{"Size", "Waist", "Hip", "Inseam"},
		Rows: [][]string{
			{"S", "30", "38", "30"},
			{"M", "32", "40", "31"},
			{"L", "34", "42", "32"},
			{"XL", "36", "44", "32"},
			{"XXL", "38", "46", "33"},
		},
	},
	"women_top": {
		Title:   "Women's Top Wear (inches)",
		Columns: []string{"Size", "Bust", "Waist", "Length"},
		Rows: [][]string{
			{"XS", "32", "26", "24"},
			{"S", "34", "28", "25"},
			{"M", "36", "30", "26"},
			{"L", "38", "32", "27"},
			{"XL", "40", "34", "28"},
		},
	},
	"women_bottom": {
		Title:   "Women's Bottom Wear (inches)",
		Columns: []string{"Size", "Waist", "Hip", "Inseam"},
		Rows: [][]string{
			{"XS", "26", "34", "29"},
			{"S", "28", "36", "29"},
			{"M", "30", "38", "30"},
			{"L", "32", "40", "30"},
			{"XL", "34", "42", "31"},
		},
	},
}

func detectGender(msg string) string {
	if womenPattern.MatchString(msg) {
		return "women"
	}
	if menPattern.MatchString(msg) {
		return "men"
	}
	return ""
}

func detectPosition(msg string) string {
	if bottomWearPattern.MatchString(msg) {
		return "bottom"
	}
	if topWearPattern.MatchString(msg) {
		return "top"
	}
	return ""
}

// sizeGuide answers the size-guide intent: pick one of the four tables by
// detected gender and garment position, or ask which gender when it can't
// tell.
func (e *Engine) sizeGuide(msg string) []models.ConversationMessage {
	gender := detectGender(msg)
	position := detectPosition(msg)

	if gender == "" {
		e.mu.Lock()
		e.sizeAskPending = true
		e.sizeAskPosition = position
		e.mu.Unlock()
		return []models.ConversationMessage{
			e.replyOptions("Happy to help with sizing — is this for men's or women's clothing?", genderOptions),
		}
	}
	return []models.ConversationMessage{e.sizeChartReply(gender, position)}
}

// resolveSizeClarification consumes the answer to the gender question.
func (e *Engine) resolveSizeClarification(msg string) []models.ConversationMessage {
	e.mu.Lock()
	position := e.sizeAskPosition
	e.sizeAskPending = false
	e.sizeAskPosition = ""
	e.mu.Unlock()

	gender := detectGender(msg)
	if gender == "" {
		return []models.ConversationMessage{
			e.reply("No problem — ask me again with \"men's size chart\" or \"women's size chart\" whenever you're ready."),
		}
	}
	if p := detectPosition(msg); p != "" {
		position = p
	}
	return []models.ConversationMessage{e.sizeChartReply(gender, position)}
}

func (e *Engine) sizeChartReply(gender, position string) models.ConversationMessage {
	if position == "" {
		position = "top"
	}
	chart := sizeCharts[gender+"_"+position]
	msg := e.replyTyped("Here's the "+chart.Title+" size chart:", models.MessageTypeSizeChart)
	msg.Chart = &chart
	return msg
}
