package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/travel-checklist/internal/model"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "   ", want: ""},
		{in: "passport", want: "Passport"},
		{in: "  hELLO World ", want: "Hello world"},
		{in: "PHONE CHARGER", want: "Phone charger"},
		{in: "éclair", want: "Éclair"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanTitle(tt.in), "CleanTitle(%q)", tt.in)
	}
}

func TestSuggestCategory(t *testing.T) {
	seeded := model.DefaultCategories()
	withSnacks := append(model.DefaultCategories(), model.Category{ID: "snacks", Name: "Snacks"})

	tests := []struct {
		name       string
		transcript string
		categories []model.Category
		current    string
		want       string
	}{
		{
			name:       "category name token",
			transcript: "Bring some MONEY",
			categories: seeded,
			current:    "clothing",
			want:       "documents",
		},
		{
			name:       "user category name",
			transcript: "pack the snacks",
			categories: withSnacks,
			current:    "clothing",
			want:       "snacks",
		},
		{
			name:       "first category in order wins",
			transcript: "beach towel",
			categories: []model.Category{
				{ID: "beach-stuff", Name: "Beach Stuff"},
				{ID: "beach-toys", Name: "Beach Toys"},
			},
			current: "beach-toys",
			want:    "beach-stuff",
		},
		{
			name:       "separator tokens never match",
			transcript: "salt & pepper",
			categories: seeded,
			current:    "electronics",
			want:       "electronics",
		},
		{name: "documents theme", transcript: "passport", categories: seeded, current: "clothing", want: "documents"},
		{name: "electronics theme", transcript: "phone charger", categories: seeded, current: "clothing", want: "electronics"},
		{name: "toiletries theme", transcript: "toothbrush", categories: seeded, current: "clothing", want: "toiletries"},
		{name: "clothing theme", transcript: "warm socks", categories: seeded, current: "documents", want: "clothing"},
		{
			name:       "health theme on renamed category",
			transcript: "medicine",
			categories: []model.Category{{ID: "toiletries", Name: "Health"}},
			current:    "x",
			want:       "toiletries",
		},
		{
			name:       "theme without matching category keeps current",
			transcript: "passport",
			categories: []model.Category{{ID: "snacks", Name: "Snacks"}},
			current:    "snacks",
			want:       "snacks",
		},
		{name: "no match keeps current", transcript: "umbrella", categories: seeded, current: "electronics", want: "electronics"},
		{name: "empty transcript keeps current", transcript: "  ", categories: seeded, current: "documents", want: "documents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestCategory(tt.transcript, tt.categories, tt.current))
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("PHONE charger", model.DefaultCategories(), "clothing")
	assert.Equal(t, Result{Title: "Phone charger", Category: "electronics"}, got)
}

// A literal whitespace-token match would let "&" in the transcript hit
// the first seeded name containing "&". Separator-only tokens are skipped,
// so the keyword themes decide instead.
func TestSeparatorTokenFallsThroughToThemes(t *testing.T) {
	categories := []model.Category{
		{ID: "documents", Name: "Documents & Money"},
		{ID: "clothing", Name: "Clothing & Accessories"},
	}

	assert.Equal(t, "clothing", SuggestCategory("socks & sandals", categories, "documents"))
	assert.Equal(t, "x", SuggestCategory("salt & pepper", categories, "x"))
	assert.False(t, hasWordChar("&"))
	assert.True(t, hasWordChar("b&b"))
}
