package catalog

import (
	"fmt"

	"readinglog/internal/entity"
)

// UnknownAuthor replaces a missing author.
const UnknownAuthor = "作者不明"

// Normalize converts raw entries of one page into results. index is the
// position within the page and backs the synthetic id of entries without one.
func Normalize(items []RawItem) []entity.CatalogResult {
	out := make([]entity.CatalogResult, 0, len(items))
	for i, it := range items {
		out = append(out, normalizeItem(it, i))
	}
	return out
}

func normalizeItem(it RawItem, index int) entity.CatalogResult {
	res := entity.CatalogResult{
		ID:          firstNonEmpty(it.ID, it.ISBN, fmt.Sprintf("book-%d", index)),
		Title:       it.Title,
		Author:      firstNonEmpty(it.Author, UnknownAuthor),
		ImageURL:    firstNonEmpty(it.LargeImageURL, it.MediumImageURL),
		Publisher:   it.PublisherName,
		Description: it.ItemCaption,
		ISBN:        it.ISBN,
		ItemURL:     it.ItemURL,
		SalesDate:   it.SalesDate,
		ReviewCount: int(it.ReviewCount),
	}
	if it.ReviewAverage.Valid {
		avg := it.ReviewAverage.Value
		res.AverageRating = &avg
	}
	return res
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
