package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

func TestStrictFilterRequiresAllThreeAttributes(t *testing.T) {
	catalog := []models.Product{
		{ID: "match", Gender: "Women", Color: "Red", Category: "Dresses"},
		{ID: "wrong-gender", Gender: "Men", Color: "Red", Category: "Dresses"},
		{ID: "wrong-color", Gender: "Women", Color: "Pink", Category: "Dresses"},
		{ID: "wrong-category", Gender: "Women", Color: "Red", Category: "Western Wear"},
	}

	matched := StrictFilter(catalog, "Women", "Red", "Dresses")
	require.Len(t, matched, 1)
	assert.Equal(t, "match", matched[0].ID)
}

func TestStrictFilterIsCaseInsensitive(t *testing.T) {
	catalog := []models.Product{
		{ID: "P1", Gender: "women", Color: "RED", Category: "dresses"},
	}
	assert.Len(t, StrictFilter(catalog, "Women", "Red", "Dresses"), 1)
}

func TestStrictFilterTrimsAttributeWhitespace(t *testing.T) {
	catalog := []models.Product{
		{ID: "P1", Gender: " Women ", Color: "Red ", Category: "Dresses"},
	}
	assert.Len(t, StrictFilter(catalog, "Women", "Red", "Dresses"), 1)
}

func TestStrictFilterZeroMatchesStaysEmpty(t *testing.T) {
	catalog := []models.Product{
		{ID: "P1", Gender: "Women", Color: "Pink", Category: "Dresses"},
		{ID: "P2", Gender: "Women", Color: "Maroon", Category: "Dresses"},
	}
	// close colors are not good enough; there is no relaxation
	matched := StrictFilter(catalog, "Women", "Red", "Dresses")
	assert.Empty(t, matched)
	assert.NotNil(t, matched)
}

func TestCategoryAliasMatching(t *testing.T) {
	tests := []struct {
		selected string
		product  string
		want     bool
	}{
		{"T-shirts", "tshirt", true},
		{"T-shirts", "T Shirts", true},
		{"T-shirts", "Tees", true},
		{"Shirts", "shirt", true},
		{"Shirts", "t-shirt", false},
		{"Bottom Wear", "bottomwear", true},
		{"Tops and Co-ord Sets", "Tops & Co-ord Sets", true},
		{"Women's Bottomwear", "womens bottomwear", true},
		{"Dresses", "dress", true},
		{"Dresses", "shirt", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categoryMatches(tt.selected, tt.product),
			"selected %q vs product %q", tt.selected, tt.product)
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, normalizeToken("T-Shirts"), normalizeToken("t shirts"))
	assert.Equal(t, normalizeToken("Women's Bottomwear"), normalizeToken("womens bottomwear"))
	assert.Equal(t, normalizeToken("Tops & Co-ord Sets"), normalizeToken("tops and coord sets"))
}
