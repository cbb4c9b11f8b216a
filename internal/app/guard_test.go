package app

import (
	"context"
	"sync"
	"testing"

	"readinglog/internal/entity"
	"readinglog/internal/store"
	"readinglog/internal/store/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	g := newGuard()

	assert.True(t, g.begin(OpSaveRecord))
	assert.False(t, g.begin(OpSaveRecord))
	assert.True(t, g.begin(OpSaveBook))
	assert.Equal(t, Pending, g.state(OpSaveRecord))
	assert.ElementsMatch(t, []Operation{OpSaveRecord, OpSaveBook}, g.snapshot())

	g.end(OpSaveRecord)
	assert.Equal(t, Idle, g.state(OpSaveRecord))
	assert.True(t, g.begin(OpSaveRecord))
}

// blockingRecords makes CreateReadingRecord wait until release is closed.
func blockingRecords(t *testing.T, f *fixture) (records *mocks.MockReadingRecordRepository, entered, release chan struct{}) {
	ctrl := gomock.NewController(t)
	records = mocks.NewMockReadingRecordRepository(ctrl)
	f.gw.Records = records
	entered = make(chan struct{})
	release = make(chan struct{})
	return records, entered, release
}

func TestSession_SameOperationIsBusy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedChild(t, "a")
	records, entered, release := blockingRecords(t, f)

	records.EXPECT().ListReadingRecords(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	records.EXPECT().CreateReadingRecord(gomock.Any(), testUser, gomock.Any()).
		DoAndReturn(func(context.Context, string, entity.ReadingRecordInput) (entity.ReadingRecord, error) {
			close(entered)
			<-release
			return entity.ReadingRecord{ID: "r1"}, nil
		})
	require.NoError(t, f.session.Load(ctx))

	in := entity.ReadingRecordInput{BookID: "b", Rating: 3, ReadDate: "2026-10-19"}
	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = f.session.AddReadingRecord(ctx, in)
	}()
	<-entered

	assert.Equal(t, Pending, f.session.State(OpSaveRecord))
	_, err := f.session.AddReadingRecord(ctx, in)
	assert.ErrorIs(t, err, ErrBusy)
	_, err = f.session.UpdateReadingRecord(ctx, "r0", in)
	assert.ErrorIs(t, err, ErrBusy)

	// Unrelated operations are not blocked.
	_, err = f.session.AddBook(ctx, entity.BookInput{Title: "independent"})
	assert.NoError(t, err)
	assert.Contains(t, f.session.Snapshot().Pending, OpSaveRecord)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
	assert.Equal(t, Idle, f.session.State(OpSaveRecord))
}

func TestSession_MutationsOnOneCollectionAreSerialized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.seedChild(t, "a")
	records, entered, release := blockingRecords(t, f)
	scope := store.Scope{UserID: testUser, ChildID: c.ID}

	afterAdd := []entity.ReadingRecord{{ID: "r1", ChildID: c.ID}}
	gomock.InOrder(
		records.EXPECT().ListReadingRecords(gomock.Any(), scope).Return(nil, nil),
		records.EXPECT().CreateReadingRecord(gomock.Any(), testUser, gomock.Any()).
			DoAndReturn(func(context.Context, string, entity.ReadingRecordInput) (entity.ReadingRecord, error) {
				close(entered)
				<-release
				return afterAdd[0], nil
			}),
		records.EXPECT().ListReadingRecords(gomock.Any(), scope).Return(afterAdd, nil),
		records.EXPECT().DeleteReadingRecord(gomock.Any(), testUser, "r1").Return(nil),
		records.EXPECT().ListReadingRecords(gomock.Any(), scope).Return(nil, nil),
	)
	require.NoError(t, f.session.Load(ctx))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := f.session.AddReadingRecord(ctx, entity.ReadingRecordInput{BookID: "b", Rating: 3, ReadDate: "2026-10-19"})
		assert.NoError(t, err)
	}()
	<-entered
	go func() {
		defer wg.Done()
		_, err := f.session.DeleteReadingRecord(ctx, "r1")
		assert.NoError(t, err)
	}()
	close(release)
	wg.Wait()

	assert.Empty(t, f.session.Records())
}
