package app

import (
	"context"
	"errors"
	"testing"

	"readinglog/internal/entity"
	"readinglog/internal/store"
	"readinglog/internal/store/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AddReadingRecord_NeverDangling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedChild(t, "a")
	require.NoError(t, f.session.Load(ctx))

	bookID, err := f.session.AddBook(ctx, entity.BookInput{Title: "ぐりとぐら", Author: "なかがわりえこ"})
	require.NoError(t, err)

	_, err = f.session.AddReadingRecord(ctx, entity.ReadingRecordInput{BookID: bookID, Rating: 4, ReadDate: "2026-10-18"})
	require.NoError(t, err)

	records, err := f.session.FetchReadingRecords(ctx)
	require.NoError(t, err)
	books := f.session.Books()
	for _, r := range records {
		found := false
		for _, b := range books {
			found = found || b.ID == r.BookID
		}
		assert.True(t, found, "record %s points at missing book %s", r.ID, r.BookID)
		assert.Equal(t, "ぐりとぐら", r.Book.Title)
	}
	assert.Len(t, records, 1)
}

func TestSession_AddReadingRecord_RequiresChild(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	book := f.seedBook(t, "x")
	require.NoError(t, f.session.Load(ctx))

	_, err := f.session.AddReadingRecord(ctx, entity.ReadingRecordInput{BookID: book.ID, Rating: 3, ReadDate: "2026-01-01"})
	assert.ErrorIs(t, err, ErrNoActiveChild)
}

func TestSession_AddReadingRecord_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedChild(t, "a")
	require.NoError(t, f.session.Load(ctx))

	_, err := f.session.AddReadingRecord(ctx, entity.ReadingRecordInput{BookID: "b", Rating: 6, ReadDate: "2026-01-01"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "rating must be at most 5")
}

func TestSession_AddReadingRecord_InvalidReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedChild(t, "a")
	require.NoError(t, f.session.Load(ctx))

	_, err := f.session.AddReadingRecord(ctx, entity.ReadingRecordInput{BookID: "missing", Rating: 3, ReadDate: "2026-01-01"})
	assert.ErrorIs(t, err, store.ErrInvalidReference)
	assert.Empty(t, f.session.Records())
}

func TestSession_UpdateReadingRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.seedChild(t, "a")
	book := f.seedBook(t, "x")
	rec := f.seedRecord(t, c.ID, book.ID)
	require.NoError(t, f.session.Load(ctx))

	records, err := f.session.UpdateReadingRecord(ctx, rec.ID, entity.ReadingRecordInput{
		BookID: book.ID, Rating: 5, Review: "again!", ReadDate: "2026-10-19",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Rating)
	assert.Equal(t, "again!", records[0].Review)
	assert.Equal(t, c.ID, records[0].ChildID)
}

func TestSession_DoubleDelete_KeepsCollection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.seedChild(t, "a")
	book := f.seedBook(t, "x")
	rec := f.seedRecord(t, c.ID, book.ID)
	keep := f.seedRecord(t, c.ID, book.ID)
	require.NoError(t, f.session.Load(ctx))

	records, err := f.session.DeleteReadingRecord(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, err = f.session.DeleteReadingRecord(ctx, rec.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	after := f.session.Records()
	require.Len(t, after, 1)
	assert.Equal(t, keep.ID, after[0].ID)
}

func TestSession_FetchFailureKeepsPreviousRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	c := f.seedChild(t, "a")
	book := f.seedBook(t, "x")
	rec := f.seedRecord(t, c.ID, book.ID)
	ctx := context.Background()

	records := mocks.NewMockReadingRecordRepository(ctrl)
	f.gw.Records = records
	scope := store.Scope{UserID: testUser, ChildID: c.ID}
	gomock.InOrder(
		records.EXPECT().ListReadingRecords(gomock.Any(), scope).Return([]entity.ReadingRecord{rec}, nil),
		records.EXPECT().ListReadingRecords(gomock.Any(), scope).Return(nil, errors.New("connection reset")),
	)
	require.NoError(t, f.session.Load(ctx))

	got, err := f.session.FetchReadingRecords(ctx)

	assert.ErrorContains(t, err, "connection reset")
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
}

func TestSession_MutationFailureSkipsReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	c := f.seedChild(t, "a")
	ctx := context.Background()

	records := mocks.NewMockReadingRecordRepository(ctrl)
	f.gw.Records = records
	records.EXPECT().ListReadingRecords(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	records.EXPECT().DeleteReadingRecord(gomock.Any(), testUser, "r1").Return(errors.New("boom"))
	require.NoError(t, f.session.Load(ctx))
	require.Equal(t, c.ID, f.session.ActiveChildID())

	_, err := f.session.DeleteReadingRecord(ctx, "r1")
	assert.ErrorContains(t, err, "boom")
}

func TestSession_ReloadFailureAfterMutationReturnsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	c := f.seedChild(t, "a")
	ctx := context.Background()
	existing := entity.ReadingRecord{ID: "r0", ChildID: c.ID, BookID: "b0"}

	records := mocks.NewMockReadingRecordRepository(ctrl)
	f.gw.Records = records
	gomock.InOrder(
		records.EXPECT().ListReadingRecords(gomock.Any(), gomock.Any()).Return([]entity.ReadingRecord{existing}, nil),
		records.EXPECT().CreateReadingRecord(gomock.Any(), testUser, gomock.Any()).Return(entity.ReadingRecord{ID: "r1"}, nil),
		records.EXPECT().ListReadingRecords(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")),
	)
	require.NoError(t, f.session.Load(ctx))

	got, err := f.session.AddReadingRecord(ctx, entity.ReadingRecordInput{BookID: "b0", Rating: 2, ReadDate: "2026-10-01"})

	require.NoError(t, err)
	assert.Equal(t, []entity.ReadingRecord{existing}, got)
}

func TestSession_FetchChildren_ReportsScopedReloadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	c := f.seedChild(t, "a")
	ctx := context.Background()

	records := mocks.NewMockReadingRecordRepository(ctrl)
	f.gw.Records = records
	records.EXPECT().ListReadingRecords(gomock.Any(), store.Scope{UserID: testUser, ChildID: c.ID}).
		Return(nil, errors.New("connection reset"))

	got, err := f.session.FetchChildren(ctx)

	assert.ErrorContains(t, err, "connection reset")
	require.Len(t, got, 1)
	assert.Equal(t, c.ID, f.session.ActiveChildID())
}
