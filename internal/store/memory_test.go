package store

import (
	"context"
	"testing"
	"time"

	"readinglog/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMemory(t *testing.T) (*Memory, entity.Child, entity.Child, entity.Book) {
	t.Helper()
	m := NewMemory()
	ctx := context.Background()

	older, err := m.CreateChild(ctx, "user-1", entity.ChildInput{Name: "たろう", Birthday: "2020-04-01"})
	require.NoError(t, err)
	newer, err := m.CreateChild(ctx, "user-1", entity.ChildInput{Name: "はなこ", Birthday: "2022-08-15"})
	require.NoError(t, err)
	book, err := m.CreateBook(ctx, "user-1", entity.BookInput{Title: "ぐりとぐら", Author: "なかがわ りえこ"})
	require.NoError(t, err)
	return m, older, newer, book
}

func TestMemory_ListChildren_NewestFirst(t *testing.T) {
	m, older, newer, _ := seedMemory(t)
	ctx := context.Background()
	_, err := m.CreateChild(ctx, "user-2", entity.ChildInput{Name: "other", Birthday: "2019-01-01"})
	require.NoError(t, err)

	children, err := m.ListChildren(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, newer.ID, children[0].ID)
	assert.Equal(t, older.ID, children[1].ID)
}

func TestMemory_ReadingRecords_ScopedByChild(t *testing.T) {
	m, older, newer, book := seedMemory(t)
	ctx := context.Background()

	for _, childID := range []string{older.ID, newer.ID, newer.ID} {
		_, err := m.CreateReadingRecord(ctx, "user-1", entity.ReadingRecordInput{
			ChildID: childID, BookID: book.ID, Rating: 4, ReadDate: "2026-10-01",
		})
		require.NoError(t, err)
	}

	all, err := m.ListReadingRecords(ctx, Scope{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := m.ListReadingRecords(ctx, Scope{UserID: "user-1", ChildID: newer.ID})
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	for _, rec := range scoped {
		assert.Equal(t, newer.ID, rec.ChildID)
		assert.Equal(t, "ぐりとぐら", rec.Book.Title)
	}
}

func TestMemory_CreateReadingRecord_InvalidReference(t *testing.T) {
	m, child, _, book := seedMemory(t)
	ctx := context.Background()

	t.Run("missing book", func(t *testing.T) {
		_, err := m.CreateReadingRecord(ctx, "user-1", entity.ReadingRecordInput{
			ChildID: child.ID, BookID: "missing", Rating: 3, ReadDate: "2026-10-01",
		})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("child of another user", func(t *testing.T) {
		_, err := m.CreateReadingRecord(ctx, "user-2", entity.ReadingRecordInput{
			ChildID: child.ID, BookID: book.ID, Rating: 3, ReadDate: "2026-10-01",
		})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestMemory_UpdateReadingRecord_ForeignChildRejected(t *testing.T) {
	m, child, _, book := seedMemory(t)
	ctx := context.Background()
	foreign, err := m.CreateChild(ctx, "user-2", entity.ChildInput{Name: "other", Birthday: "2019-01-01"})
	require.NoError(t, err)
	rec, err := m.CreateReadingRecord(ctx, "user-1", entity.ReadingRecordInput{
		ChildID: child.ID, BookID: book.ID, Rating: 3, ReadDate: "2026-10-01",
	})
	require.NoError(t, err)

	_, err = m.UpdateReadingRecord(ctx, "user-1", rec.ID, entity.ReadingRecordInput{
		ChildID: foreign.ID, BookID: book.ID, Rating: 4, ReadDate: "2026-10-02",
	})
	assert.ErrorIs(t, err, ErrInvalidReference)

	records, err := m.ListReadingRecords(ctx, Scope{UserID: "user-1", ChildID: child.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].Rating)
}

func TestMemory_DeleteReadingRecord_Twice(t *testing.T) {
	m, child, _, book := seedMemory(t)
	ctx := context.Background()
	rec, err := m.CreateReadingRecord(ctx, "user-1", entity.ReadingRecordInput{
		ChildID: child.ID, BookID: book.ID, Rating: 5, ReadDate: "2026-10-01",
	})
	require.NoError(t, err)

	require.NoError(t, m.DeleteReadingRecord(ctx, "user-1", rec.ID))
	assert.ErrorIs(t, m.DeleteReadingRecord(ctx, "user-1", rec.ID), ErrNotFound)
}

func TestMemory_DeleteChild_Cascades(t *testing.T) {
	m, child, other, book := seedMemory(t)
	ctx := context.Background()
	_, err := m.CreateReadingRecord(ctx, "user-1", entity.ReadingRecordInput{
		ChildID: child.ID, BookID: book.ID, Rating: 2, ReadDate: "2026-10-01",
	})
	require.NoError(t, err)
	_, err = m.CreateWishlistEntry(ctx, "user-1", entity.WishlistInput{ChildID: child.ID, Title: "T"})
	require.NoError(t, err)
	_, err = m.CreateWishlistEntry(ctx, "user-1", entity.WishlistInput{ChildID: other.ID, Title: "U"})
	require.NoError(t, err)

	require.NoError(t, m.DeleteChild(ctx, "user-1", child.ID))

	records, err := m.ListReadingRecords(ctx, Scope{UserID: "user-1"})
	require.NoError(t, err)
	assert.Empty(t, records)
	wishlist, err := m.ListWishlist(ctx, Scope{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, wishlist, 1)
	assert.Equal(t, "U", wishlist[0].Title)

	assert.ErrorIs(t, m.DeleteChild(ctx, "user-1", child.ID), ErrNotFound)
}

func TestMemory_UpdateChild(t *testing.T) {
	m, child, _, _ := seedMemory(t)
	ctx := context.Background()
	later := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	m.SetClock(func() time.Time { return later })

	updated, err := m.UpdateChild(ctx, "user-1", child.ID, entity.ChildInput{Name: "じろう", Birthday: "2020-05-05"})
	require.NoError(t, err)
	assert.Equal(t, "じろう", updated.Name)
	assert.Equal(t, "2020-05-05", updated.Birthday)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, child.CreatedAt, updated.CreatedAt)

	_, err = m.UpdateChild(ctx, "user-2", child.ID, entity.ChildInput{Name: "x", Birthday: "2020-05-05"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Wishlist_RoundTrip(t *testing.T) {
	m, child, _, _ := seedMemory(t)
	ctx := context.Background()
	rating := 4.5

	_, err := m.CreateWishlistEntry(ctx, "user-1", entity.WishlistInput{
		ChildID: child.ID, Title: "T", Author: "A", ImageURL: "https://example.com/t.jpg", Rating: &rating,
	})
	require.NoError(t, err)

	entries, err := m.ListWishlist(ctx, Scope{UserID: "user-1", ChildID: child.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "T", entries[0].Title)
	assert.Equal(t, "A", entries[0].Author)
	require.NotNil(t, entries[0].Rating)
	assert.InDelta(t, 4.5, *entries[0].Rating, 0.001)

	_, err = m.CreateWishlistEntry(ctx, "user-1", entity.WishlistInput{ChildID: "missing", Title: "T"})
	assert.ErrorIs(t, err, ErrInvalidReference)
}
