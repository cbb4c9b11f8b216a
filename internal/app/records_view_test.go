package app

import (
	"testing"

	"readinglog/internal/entity"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []entity.ReadingRecord {
	return []entity.ReadingRecord{
		{ID: "1", Rating: 3, ReadDate: "2026-09-01", Book: entity.BookRef{Title: "ぐりとぐら", Author: "なかがわりえこ"}},
		{ID: "2", Rating: 5, ReadDate: "2026-10-10", Book: entity.BookRef{Title: "はらぺこあおむし", Author: "Eric Carle"}},
		{ID: "3", Rating: 4, ReadDate: "2025-12-24", Book: entity.BookRef{Title: "おおきなかぶ", Author: "A・トルストイ"}},
	}
}

func ids(records []entity.ReadingRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilterRecords(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, []string{"2"}, ids(FilterRecords(records, "eric")))
	assert.Equal(t, []string{"1"}, ids(FilterRecords(records, "ぐら")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterRecords(records, "  ")))
	assert.Empty(t, FilterRecords(records, "zzz"))
}

func TestSortRecords(t *testing.T) {
	tests := []struct {
		by   SortKey
		want []string
	}{
		{SortByDate, []string{"2", "1", "3"}},
		{SortByTitle, []string{"3", "1", "2"}},
		{SortByRating, []string{"2", "3", "1"}},
		{"unknown", []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.by), func(t *testing.T) {
			records := sampleRecords()
			assert.Equal(t, tt.want, ids(SortRecords(records, tt.by)))
			assert.Equal(t, []string{"1", "2", "3"}, ids(records))
		})
	}
}
