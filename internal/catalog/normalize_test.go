package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Fallbacks(t *testing.T) {
	var items []RawItem
	require.NoError(t, json.Unmarshal([]byte(`[
		{"Item": {"isbn": "111", "title": "A", "author": "X", "largeImageUrl": "L", "mediumImageUrl": "M"}},
		{"Item": {"title": "B", "mediumImageUrl": "M"}},
		{"title": "C"},
		{"Item": {"title": "D", "reviewAverage": "n/a", "reviewCount": "12"}}
	]`), &items))

	got := Normalize(items)
	require.Len(t, got, 4)

	assert.Equal(t, "111", got[0].ID)
	assert.Equal(t, "X", got[0].Author)
	assert.Equal(t, "L", got[0].ImageURL)

	assert.Equal(t, "book-1", got[1].ID)
	assert.Equal(t, UnknownAuthor, got[1].Author)
	assert.Equal(t, "M", got[1].ImageURL)

	assert.Equal(t, "book-2", got[2].ID)
	assert.Equal(t, "", got[2].ImageURL)
	assert.Nil(t, got[2].AverageRating)

	assert.Nil(t, got[3].AverageRating)
	assert.Equal(t, 12, got[3].ReviewCount)
}

func TestNormalize_SyntheticIDsUniqueWithinPage(t *testing.T) {
	got := Normalize(make([]RawItem, 5))
	seen := map[string]bool{}
	for _, r := range got {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}
