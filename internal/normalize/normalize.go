// Package normalize turns free-text dictation into an item title and a
// best-guess category.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nhle/travel-checklist/internal/model"
)

// Result is the advisory output of Normalize.
type Result struct {
	Title    string
	Category string
}

// theme ties keywords to the substring a category name must contain to
// receive them.
type theme struct {
	match    []string
	keywords []string
}

// themes is consulted in order when no category name matches directly.
var themes = []theme{
	{
		match: []string{"clothing"},
		keywords: []string{
			"shirt", "t-shirt", "pants", "trousers", "jeans", "shorts", "dress",
			"skirt", "jacket", "coat", "sweater", "hoodie", "socks", "underwear",
			"shoes", "sneakers", "boots", "sandals", "hat", "cap", "scarf",
			"gloves", "belt", "swimsuit", "pajamas", "sunglasses",
		},
	},
	{
		match: []string{"document"},
		keywords: []string{
			"passport", "visa", "ticket", "boarding pass", "license", "licence",
			"insurance", "itinerary", "reservation", "booking", "wallet",
			"cash", "money", "credit card", "debit card", "card",
		},
	},
	{
		match: []string{"electronic"},
		keywords: []string{
			"phone", "charger", "cable", "laptop", "tablet", "camera",
			"headphones", "earbuds", "adapter", "power bank", "battery",
			"kindle", "e-reader", "watch",
		},
	},
	{
		match: []string{"toiletr", "health"},
		keywords: []string{
			"toothbrush", "toothpaste", "floss", "shampoo", "conditioner",
			"soap", "deodorant", "razor", "sunscreen", "lotion", "medicine",
			"medication", "pills", "vitamins", "bandage", "first aid",
			"makeup", "comb", "brush", "perfume",
		},
	},
}

// Normalize cleans transcript into a title and suggests a category from
// categories. When nothing matches, current is returned unchanged.
func Normalize(transcript string, categories []model.Category, current string) Result {
	return Result{
		Title:    CleanTitle(transcript),
		Category: SuggestCategory(transcript, categories, current),
	}
}

// CleanTitle trims text, upper-cases its first letter and lower-cases the
// rest.
func CleanTitle(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(first)) + strings.ToLower(text[size:])
}

// SuggestCategory picks the category id for transcript. Category names are
// tried first, then the keyword themes.
func SuggestCategory(transcript string, categories []model.Category, current string) string {
	text := strings.ToLower(transcript)
	if strings.TrimSpace(text) == "" {
		return current
	}

	// Tokens without a letter or digit ("&") are skipped; they would match
	// any transcript that merely contains the separator.
	for _, c := range categories {
		for _, token := range strings.Fields(strings.ToLower(c.Name)) {
			if !hasWordChar(token) {
				continue
			}
			if strings.Contains(text, token) {
				return c.ID
			}
		}
	}

	for _, th := range themes {
		if !containsAny(text, th.keywords) {
			continue
		}
		for _, c := range categories {
			if containsAny(strings.ToLower(c.Name), th.match) {
				return c.ID
			}
		}
	}

	return current
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hasWordChar filters out separator tokens such as "&".
func hasWordChar(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
