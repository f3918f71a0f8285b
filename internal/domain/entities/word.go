// Package entities contains domain entities used across the application.
package entities

import "errors"

var ErrUnknownCategory = errors.New("unknown category")

// Category is one of the fixed term classes of the catalog.
type Category string

const (
	CategorySinoKorean Category = "한자어"
	CategoryLoanword   Category = "외래어"
	CategoryRecent     Category = "최신 순화어"

	// CategoryAll selects the whole catalog. It is never stored on a WordItem.
	CategoryAll Category = "전체"
)

// Categories lists the stored categories in display order.
var Categories = []Category{CategorySinoKorean, CategoryLoanword, CategoryRecent}

// Valid reports whether c is one of the stored categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySinoKorean, CategoryLoanword, CategoryRecent:
		return true
	}
	return false
}

// ParseCategory converts user input into a category filter.
// An empty string selects the whole catalog.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if s == "" || c == CategoryAll {
		return CategoryAll, nil
	}
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// WordItem is a catalog entry: a term to purify and its accepted answers.
type WordItem struct {
	ID       string   `json:"id"`       // unique within the catalog
	Original string   `json:"original"` // term to be purified
	Purified []string `json:"purified"` // accepted answers, in display order
	Category Category `json:"category"`
}

// Matches reports whether the word belongs to the given filter.
func (w WordItem) Matches(c Category) bool {
	return c == CategoryAll || w.Category == c
}
