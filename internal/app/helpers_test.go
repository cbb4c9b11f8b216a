package app

import (
	"context"
	"testing"

	"readinglog/internal/entity"
	"readinglog/internal/prefs"
	"readinglog/internal/store"
	"readinglog/pkg/logger"

	"github.com/stretchr/testify/require"
)

const testUser = "user-1"

type fixture struct {
	session *Session
	mem     *store.Memory
	gw      *store.Gateway
	prefs   *prefs.Memory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := store.NewMemory()
	gw := store.NewMemoryGateway(mem)
	p := prefs.NewMemory()
	return &fixture{
		session: New(testUser, gw, p, logger.Discard()),
		mem:     mem,
		gw:      gw,
		prefs:   p,
	}
}

// seedChild creates a child directly in the store, bypassing the session.
func (f *fixture) seedChild(t *testing.T, name string) entity.Child {
	t.Helper()
	c, err := f.mem.CreateChild(context.Background(), testUser, entity.ChildInput{Name: name, Birthday: "2021-04-01"})
	require.NoError(t, err)
	return c
}

func (f *fixture) seedBook(t *testing.T, title string) entity.Book {
	t.Helper()
	b, err := f.mem.CreateBook(context.Background(), testUser, entity.BookInput{Title: title, Author: "作者"})
	require.NoError(t, err)
	return b
}

func (f *fixture) seedRecord(t *testing.T, childID, bookID string) entity.ReadingRecord {
	t.Helper()
	r, err := f.mem.CreateReadingRecord(context.Background(), testUser, entity.ReadingRecordInput{
		ChildID: childID, BookID: bookID, Rating: 4, ReadDate: "2026-10-01",
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) seedWish(t *testing.T, childID, title string) entity.WishlistEntry {
	t.Helper()
	w, err := f.mem.CreateWishlistEntry(context.Background(), testUser, entity.WishlistInput{ChildID: childID, Title: title})
	require.NoError(t, err)
	return w
}

func (f *fixture) persisted(t *testing.T) string {
	t.Helper()
	v, _, err := f.prefs.Get(context.Background(), testUser, prefs.KeyActiveChild)
	require.NoError(t, err)
	return v
}

func ptr(s string) *string { return &s }
