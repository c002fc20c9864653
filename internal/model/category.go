package model

import "strings"

// Category is a named grouping of items. Its ID never changes after
// creation; only Name is mutable.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// CategoryID derives the identifier for a category name: lower-cased,
// with every whitespace run replaced by a single hyphen.
func CategoryID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// DefaultCategories returns the seed category set in tab order.
// A fresh slice is returned on every call.
func DefaultCategories() []Category {
	return []Category{
		{ID: "clothing", Name: "Clothing & Accessories"},
		{ID: "documents", Name: "Documents & Money"},
		{ID: "electronics", Name: "Electronics"},
		{ID: "toiletries", Name: "Toiletries & Health"},
	}
}

// FallbackCategory is the category restored when items reference
// FallbackCategoryID but no such category is stored.
func FallbackCategory() Category {
	return Category{ID: FallbackCategoryID, Name: "Other Items"}
}
