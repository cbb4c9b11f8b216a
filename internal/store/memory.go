package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"readinglog/internal/entity"

	"github.com/google/uuid"
)

// Memory is an in-process store implementing every repository. It is used by
// STORE_DRIVER=memory and by tests. Rows are returned newest first; rows
// created within the same clock tick keep insertion order.
type Memory struct {
	mu       sync.RWMutex
	now      func() time.Time
	children []entity.Child
	books    []entity.Book
	records  []entity.ReadingRecord
	wishlist []entity.WishlistEntry
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// NewMemoryGateway wraps m in a Gateway.
func NewMemoryGateway(m *Memory) *Gateway {
	return &Gateway{Children: m, Books: m, Records: m, Wishlist: m}
}

// SetClock overrides the timestamp source.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// newestFirst copies rows reversed, so the most recently appended comes first.
func newestFirst[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		if keep(rows[i]) {
			out = append(out, rows[i])
		}
	}
	return out
}

func (m *Memory) ListChildren(_ context.Context, userID string) ([]entity.Child, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.children, func(c entity.Child) bool { return c.UserID == userID }), nil
}

func (m *Memory) CreateChild(_ context.Context, userID string, in entity.ChildInput) (entity.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	c := entity.Child{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      in.Name,
		Birthday:  in.Birthday,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.children = append(m.children, c)
	return c, nil
}

func (m *Memory) UpdateChild(_ context.Context, userID, id string, in entity.ChildInput) (entity.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.children {
		if c.ID == id && c.UserID == userID {
			c.Name = in.Name
			c.Birthday = in.Birthday
			c.UpdatedAt = m.now()
			m.children[i] = c
			return c, nil
		}
	}
	return entity.Child{}, ErrNotFound
}

// DeleteChild removes the child together with its records and wishlist
// entries, matching the ON DELETE CASCADE of the SQL schema.
func (m *Memory) DeleteChild(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := slices.IndexFunc(m.children, func(c entity.Child) bool { return c.ID == id && c.UserID == userID })
	if idx < 0 {
		return ErrNotFound
	}
	m.children = slices.Delete(m.children, idx, idx+1)
	m.records = slices.DeleteFunc(m.records, func(r entity.ReadingRecord) bool { return r.ChildID == id })
	m.wishlist = slices.DeleteFunc(m.wishlist, func(w entity.WishlistEntry) bool { return w.ChildID == id })
	return nil
}

func (m *Memory) ListBooks(_ context.Context, userID string) ([]entity.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.books, func(b entity.Book) bool { return b.UserID == userID }), nil
}

func (m *Memory) CreateBook(_ context.Context, userID string, in entity.BookInput) (entity.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	b := entity.Book{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     in.Title,
		Author:    in.Author,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.books = append(m.books, b)
	return b, nil
}

func (m *Memory) ListReadingRecords(_ context.Context, scope Scope) ([]entity.ReadingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := newestFirst(m.records, func(r entity.ReadingRecord) bool {
		return r.UserID == scope.UserID && (scope.ChildID == "" || r.ChildID == scope.ChildID)
	})
	for i := range records {
		records[i].Book = m.bookRef(records[i].BookID)
	}
	return records, nil
}

func (m *Memory) CreateReadingRecord(_ context.Context, userID string, in entity.ReadingRecordInput) (entity.ReadingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ownsChild(userID, in.ChildID) || !m.ownsBook(userID, in.BookID) {
		return entity.ReadingRecord{}, ErrInvalidReference
	}
	now := m.now()
	rec := entity.ReadingRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		ChildID:   in.ChildID,
		BookID:    in.BookID,
		Rating:    in.Rating,
		Review:    in.Review,
		ReadDate:  in.ReadDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.records = append(m.records, rec)
	rec.Book = m.bookRef(rec.BookID)
	return rec, nil
}

func (m *Memory) UpdateReadingRecord(_ context.Context, userID, id string, in entity.ReadingRecordInput) (entity.ReadingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, rec := range m.records {
		if rec.ID != id || rec.UserID != userID {
			continue
		}
		if !m.ownsBook(userID, in.BookID) {
			return entity.ReadingRecord{}, ErrNotFound
		}
		if in.ChildID != "" {
			if !m.ownsChild(userID, in.ChildID) {
				return entity.ReadingRecord{}, ErrInvalidReference
			}
			rec.ChildID = in.ChildID
		}
		rec.BookID = in.BookID
		rec.Rating = in.Rating
		rec.Review = in.Review
		rec.ReadDate = in.ReadDate
		rec.UpdatedAt = m.now()
		m.records[i] = rec
		rec.Book = m.bookRef(rec.BookID)
		return rec, nil
	}
	return entity.ReadingRecord{}, ErrNotFound
}

func (m *Memory) DeleteReadingRecord(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := slices.IndexFunc(m.records, func(r entity.ReadingRecord) bool { return r.ID == id && r.UserID == userID })
	if idx < 0 {
		return ErrNotFound
	}
	m.records = slices.Delete(m.records, idx, idx+1)
	return nil
}

func (m *Memory) ListWishlist(_ context.Context, scope Scope) ([]entity.WishlistEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.wishlist, func(w entity.WishlistEntry) bool {
		return w.UserID == scope.UserID && (scope.ChildID == "" || w.ChildID == scope.ChildID)
	}), nil
}

func (m *Memory) CreateWishlistEntry(_ context.Context, userID string, in entity.WishlistInput) (entity.WishlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ownsChild(userID, in.ChildID) {
		return entity.WishlistEntry{}, ErrInvalidReference
	}
	now := m.now()
	w := entity.WishlistEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		ChildID:   in.ChildID,
		Title:     in.Title,
		Author:    in.Author,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Rating != nil {
		rating := *in.Rating
		w.Rating = &rating
	}
	m.wishlist = append(m.wishlist, w)
	return w, nil
}

func (m *Memory) DeleteWishlistEntry(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := slices.IndexFunc(m.wishlist, func(w entity.WishlistEntry) bool { return w.ID == id && w.UserID == userID })
	if idx < 0 {
		return ErrNotFound
	}
	m.wishlist = slices.Delete(m.wishlist, idx, idx+1)
	return nil
}

func (m *Memory) ownsChild(userID, id string) bool {
	return slices.ContainsFunc(m.children, func(c entity.Child) bool { return c.ID == id && c.UserID == userID })
}

func (m *Memory) ownsBook(userID, id string) bool {
	return slices.ContainsFunc(m.books, func(b entity.Book) bool { return b.ID == id && b.UserID == userID })
}

func (m *Memory) bookRef(id string) entity.BookRef {
	for _, b := range m.books {
		if b.ID == id {
			return entity.BookRef{Title: b.Title, Author: b.Author, ImageURL: b.ImageURL}
		}
	}
	return entity.BookRef{}
}
