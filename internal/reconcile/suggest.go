// Package reconcile links a reading record being entered to a book: it
// suggests books already on the shelf and creates a new one when the
// entered title has no match.
package reconcile

import (
	"strings"

	"readinglog/internal/entity"
)

// Suggest returns the books whose title contains title, ignoring case.
// A blank title suggests nothing.
func Suggest(books []entity.Book, title string) []entity.Book {
	q := strings.ToLower(strings.TrimSpace(title))
	if q == "" {
		return nil
	}
	var out []entity.Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) {
			out = append(out, b)
		}
	}
	return out
}

// findExact returns the book with the same title and author, ignoring case
// and surrounding space.
func findExact(books []entity.Book, title, author string) (entity.Book, bool) {
	for _, b := range books {
		if sameText(b.Title, title) && sameText(b.Author, author) {
			return b, true
		}
	}
	return entity.Book{}, false
}

func sameText(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
