package assistant

import (
	"strings"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// categoryAliases maps each offered category to the spellings the catalog
// uses for it. Matching is exact against this list after normalization —
// no substring or fuzzy matching.
var categoryAliases = map[string][]string{
	"shirts":               {"shirts", "shirt"},
	"t-shirts":             {"t-shirts", "t-shirt", "tshirts", "tshirt", "tees", "tee"},
	"bottom wear":          {"bottom wear", "bottomwear", "bottoms"},
	"hoodies":              {"hoodies", "hoodie", "sweatshirts", "sweatshirt"},
	"western wear":         {"western wear", "westernwear"},
	"dresses":              {"dresses", "dress"},
	"ethnic wear":          {"ethnic wear", "ethnicwear"},
	"tops and co-ord sets": {"tops and co-ord sets", "tops & co-ord sets", "tops", "co-ord sets", "coord sets"},
	"women's bottomwear":   {"women's bottomwear", "womens bottomwear", "women bottomwear"},
}

// normalizeToken strips spacing, hyphens and apostrophes so "T-Shirts",
// "tshirt" and "t shirts" compare equal.
func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", " ", "", "'", "", "&", "and").Replace(s)
}

// categoryMatches reports whether a product's category is the selected
// category or one of its known aliases.
func categoryMatches(selected, productCategory string) bool {
	aliases, ok := categoryAliases[strings.ToLower(selected)]
	if !ok {
		aliases = []string{selected}
	}
	pc := normalizeToken(productCategory)
	for _, a := range aliases {
		if normalizeToken(a) == pc {
			return true
		}
	}
	return false
}

// StrictFilter returns only products matching ALL of gender, color and
// category exactly (category via the alias map). There is intentionally no
// fallback relaxation: zero matches means zero products shown.
func StrictFilter(products []models.Product, gender, color, category string) []models.Product {
	matched := []models.Product{}
	for _, p := range products {
		if !strings.EqualFold(strings.TrimSpace(p.Gender), gender) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(p.Color), color) {
			continue
		}
		if !categoryMatches(category, p.Category) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
