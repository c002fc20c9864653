package model

// FallbackCategoryID is assigned to stored items that predate categories.
const FallbackCategoryID = "other"

// Item is a single checklist entry.
type Item struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Category  string `json:"category"`
}
