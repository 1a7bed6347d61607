package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// Flow step tags. Face Tone runs tone → color → gender → category; Body Fit
// runs gender → shape → category → color. Both end in the same strict
// three-way filter.
const (
	stepToneSelection     = "tone_selection"
	stepColorSelection    = "color_selection"
	stepGenderSelection   = "gender_selection"
	stepCategorySelection = "category_selection"
	stepShapeSelection    = "body_shape_selection"
)

var skinTones = []string{"Fair", "Wheatish", "Dusky", "Dark"}

// toneColorPairs is the fixed tone → suggested-colors table.
var toneColorPairs = map[string][]string{
	"Fair":     {"Blue", "Black"},
	"Wheatish": {"Red", "Pink"},
	"Dusky":    {"White", "Grey"},
	"Dark":     {"Green", "White"},
}

var genderOptions = []string{"Men", "Women"}

var menCategories = []string{"Shirts", "T-shirts", "Bottom Wear", "Hoodies"}
var womenCategories = []string{"Western Wear", "Dresses", "Ethnic Wear", "Tops and Co-ord Sets", "Women's Bottomwear"}

var menShapes = []string{"Slim", "Athletic", "Muscular", "Plus Size"}
var womenShapes = []string{"Pear Shape", "Apple Shape", "Hourglass Shape", "Rectangle Shape"}

// shapeCategories maps (gender, body shape) to the categories that flatter
// that shape. One static entry per shape.
var shapeCategories = map[string]map[string][]string{
	"Men": {
		"Slim":      {"Shirts", "T-shirts"},
		"Athletic":  {"T-shirts", "Hoodies"},
		"Muscular":  {"Shirts", "T-shirts", "Hoodies"},
		"Plus Size": {"Shirts", "Bottom Wear"},
	},
	"Women": {
		"Pear Shape":      {"Western Wear", "Dresses", "Tops and Co-ord Sets"},
		"Apple Shape":     {"Dresses", "Ethnic Wear"},
		"Hourglass Shape": {"Western Wear", "Dresses"},
		"Rectangle Shape": {"Tops and Co-ord Sets", "Women's Bottomwear"},
	},
}

var bodyFitColors = []string{"Red", "Pink", "Black", "White", "Green", "Grey", "Blue"}

func categoriesForGender(gender string) []string {
	if strings.EqualFold(gender, "Women") {
		return womenCategories
	}
	return menCategories
}

func shapesForGender(gender string) []string {
	if strings.EqualFold(gender, "Women") {
		return womenShapes
	}
	return menShapes
}

// matchOption resolves a user message against the offered choices:
// case-insensitive exact match first, then the option appearing inside the
// message ("i'm fair" picks Fair).
func matchOption(text string, options []string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, opt := range options {
		if t == strings.ToLower(opt) {
			return opt, true
		}
	}
	for _, opt := range options {
		if strings.Contains(t, strings.ToLower(opt)) {
			return opt, true
		}
	}
	return "", false
}

func (e *Engine) startFaceTone() []models.ConversationMessage {
	e.mu.Lock()
	e.flow = models.FlowState{
		Kind:      models.FlowFaceTone,
		Step:      stepToneSelection,
		Collected: map[string]string{},
	}
	e.mu.Unlock()
	return []models.ConversationMessage{
		e.replyOptions("Let's find colors that suit you. How would you describe your skin tone?", skinTones),
	}
}

func (e *Engine) startBodyFit() []models.ConversationMessage {
	e.mu.Lock()
	e.flow = models.FlowState{
		Kind:      models.FlowBodyFit,
		Step:      stepGenderSelection,
		Collected: map[string]string{},
	}
	e.mu.Unlock()
	return []models.ConversationMessage{
		e.replyOptions("Let's find styles that fit your body shape. Are you shopping for men or women?", genderOptions),
	}
}

func (e *Engine) advanceFlow(ctx context.Context, flow models.FlowState, text string) []models.ConversationMessage {
	switch flow.Kind {
	case models.FlowFaceTone:
		return e.advanceFaceTone(ctx, flow, text)
	case models.FlowBodyFit:
		return e.advanceBodyFit(ctx, flow, text)
	default:
		return []models.ConversationMessage{e.welcome()}
	}
}

// setFlowStep records a collected value and advances the step. The map is
// shared with e.flow, so the write happens under the engine lock.
func (e *Engine) setFlowStep(flow models.FlowState, step, key, value string) models.FlowState {
	e.mu.Lock()
	flow.Collected[key] = value
	flow.Step = step
	e.flow = flow
	e.mu.Unlock()
	return flow
}

func (e *Engine) resetFlow() {
	e.mu.Lock()
	e.flow = e.flow.Reset()
	e.mu.Unlock()
}

func (e *Engine) advanceFaceTone(ctx context.Context, flow models.FlowState, text string) []models.ConversationMessage {
	switch flow.Step {
	case stepToneSelection:
		tone, ok := matchOption(text, skinTones)
		if !ok {
			return []models.ConversationMessage{e.replyOptions("Pick the closest match for your skin tone:", skinTones)}
		}
		e.setFlowStep(flow, stepColorSelection, "tone", tone)
		colors := toneColorPairs[tone]
		return []models.ConversationMessage{
			e.replyOptions(fmt.Sprintf("%s tones look great in these colors. Which one do you like?", tone), colors),
		}

	case stepColorSelection:
		colors := toneColorPairs[flow.Collected["tone"]]
		color, ok := matchOption(text, colors)
		if !ok {
			return []models.ConversationMessage{e.replyOptions("Choose one of the suggested colors:", colors)}
		}
		e.setFlowStep(flow, stepGenderSelection, "color", color)
		return []models.ConversationMessage{
			e.replyOptions("Great choice. Are you shopping for men or women?", genderOptions),
		}

	case stepGenderSelection:
		gender, ok := matchOption(text, genderOptions)
		if !ok {
			return []models.ConversationMessage{e.replyOptions("Men or women?", genderOptions)}
		}
		e.setFlowStep(flow, stepCategorySelection, "gender", gender)
		return []models.ConversationMessage{
			e.replyOptions("And what are you looking for?", categoriesForGender(gender)),
		}

	case stepCategorySelection:
		categories := categoriesForGender(flow.Collected["gender"])
		category, ok := matchOption(text, categories)
		if !ok {
			return []models.ConversationMessage{e.replyOptions("Pick a category:", categories)}
		}
		// Terminal step: strict filter, then the flow resets no matter what.
		defer e.resetFlow()
		return e.strictResults(ctx, flow.Collected["gender"], flow.Collected["color"], category, "")
	}
	return []models.ConversationMessage{e.welcome()}
}

func (e *Engine) advanceBodyFit(ctx context.Context, flow models.FlowState, text string) []models.ConversationMessage {
	switch flow.Step {
	case stepGenderSelection:
		gender, ok := matchOption(text, genderOptions)
		if !ok {
			return []models.ConversationMessage{e.replyOptions("Men or women?", genderOptions)}
		}
		e.setFlowStep(flow, stepShapeSelection, "gender", gender)
		return []models.ConversationMessage{
			e.replyOptions("How would you describe your body shape?", shapesForGender(gender)),
		}

	case stepShapeSelection:
		shapes := shapesForGender(flow.Collected["gender"])
		shape, ok := matchOption(text, shapes)
		if !ok {
			return []models.ConversationMessage{e.replyOptions("Pick the closest body shape:", shapes)}
		}
		e.setFlowStep(flow, stepCategorySelection, "shape", shape)
		categories := shapeCategories[flow.Collected["gender"]][shape]
		return []models.ConversationMessage{
			e.replyOptions(fmt.Sprintf("These styles work really well for a %s build:", strings.ToLower(shape)), categories),
		}

	case stepCategorySelection:
		categories := shapeCategories[flow.Collected["gender"]][flow.Collected["shape"]]
		category, ok := matchOption(text, categories)
		if !ok {
			return []models.ConversationMessage{e.replyOptions("Pick a category:", categories)}
		}
		e.setFlowStep(flow, stepColorSelection, "category", category)
		return []models.ConversationMessage{
			e.replyOptions("And which color?", bodyFitColors),
		}

	case stepColorSelection:
		color, ok := matchOption(text, bodyFitColors)
		if !ok {
			return []models.ConversationMessage{e.replyOptions("Pick a color:", bodyFitColors)}
		}
		// Body shape narrows the offered categories but the catalog has no
		// body-shape attribute, so the final filter is gender+category+color.
		// The reply says so rather than silently ignoring the shape.
		note := fmt.Sprintf("(Filtered by gender, category and color — %s is reflected in the categories I suggested.)",
			strings.ToLower(flow.Collected["shape"]))
		defer e.resetFlow()
		return e.strictResults(ctx, flow.Collected["gender"], color, flow.Collected["category"], note)
	}
	return []models.ConversationMessage{e.welcome()}
}

// strictResults runs the terminal strict filter over the full catalog.
// Zero matches produce the fixed no-match message, never a relaxed set.
func (e *Engine) strictResults(ctx context.Context, gender, color, category, note string) []models.ConversationMessage {
	catalog, err := e.remote.ListProducts(ctx)
	if err != nil {
		return []models.ConversationMessage{e.replyTyped(searchFailedText, models.MessageTypeError)}
	}
	matched := StrictFilter(catalog, gender, color, category)
	if len(matched) == 0 {
		return []models.ConversationMessage{e.replyTyped(noMatchText, models.MessageTypeEmpty)}
	}
	text := fmt.Sprintf("Found %d %s %s in %s for you:", len(matched), strings.ToLower(gender), strings.ToLower(category), strings.ToLower(color))
	if note != "" {
		text += " " + note
	}
	return []models.ConversationMessage{e.replyProducts(text, matched)}
}
