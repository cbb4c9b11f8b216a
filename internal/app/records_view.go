package app

import (
	"cmp"
	"slices"
	"strings"

	"readinglog/internal/entity"
)

// SortKey orders records on the read page.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByTitle  SortKey = "title"
	SortByRating SortKey = "rating"
)

// FilterRecords keeps records whose book title or author contains query,
// ignoring case. An empty query keeps everything.
func FilterRecords(records []entity.ReadingRecord, query string) []entity.ReadingRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(records)
	}
	out := make([]entity.ReadingRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Book.Title), q) || strings.Contains(strings.ToLower(r.Book.Author), q) {
			out = append(out, r)
		}
	}
	return out
}

// SortRecords returns a sorted copy: by read date newest first, by title
// ascending, or by rating highest first. Ties keep their input order, and an
// unknown key returns the input order.
func SortRecords(records []entity.ReadingRecord, by SortKey) []entity.ReadingRecord {
	out := slices.Clone(records)
	switch by {
	case SortByDate:
		slices.SortStableFunc(out, func(a, b entity.ReadingRecord) int { return cmp.Compare(b.ReadDate, a.ReadDate) })
	case SortByTitle:
		slices.SortStableFunc(out, func(a, b entity.ReadingRecord) int { return cmp.Compare(a.Book.Title, b.Book.Title) })
	case SortByRating:
		slices.SortStableFunc(out, func(a, b entity.ReadingRecord) int { return cmp.Compare(b.Rating, a.Rating) })
	}
	return out
}
