package store

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"
	"errors"

	"readinglog/internal/entity"
)

var (
	// ErrNotFound is returned when an update or delete matches no row owned by the user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference is returned when a row would point at a missing child or book.
	ErrInvalidReference = errors.New("invalid reference")
)

// Scope selects the rows visible to a query. An empty ChildID means every
// child of the user.
type Scope struct {
	UserID  string
	ChildID string
}

type ChildRepository interface {
	ListChildren(ctx context.Context, userID string) ([]entity.Child, error)
	CreateChild(ctx context.Context, userID string, in entity.ChildInput) (entity.Child, error)
	UpdateChild(ctx context.Context, userID, id string, in entity.ChildInput) (entity.Child, error)
	DeleteChild(ctx context.Context, userID, id string) error
}

type BookRepository interface {
	ListBooks(ctx context.Context, userID string) ([]entity.Book, error)
	CreateBook(ctx context.Context, userID string, in entity.BookInput) (entity.Book, error)
}

type ReadingRecordRepository interface {
	ListReadingRecords(ctx context.Context, scope Scope) ([]entity.ReadingRecord, error)
	CreateReadingRecord(ctx context.Context, userID string, in entity.ReadingRecordInput) (entity.ReadingRecord, error)
	UpdateReadingRecord(ctx context.Context, userID, id string, in entity.ReadingRecordInput) (entity.ReadingRecord, error)
	DeleteReadingRecord(ctx context.Context, userID, id string) error
}

type WishlistRepository interface {
	ListWishlist(ctx context.Context, scope Scope) ([]entity.WishlistEntry, error)
	CreateWishlistEntry(ctx context.Context, userID string, in entity.WishlistInput) (entity.WishlistEntry, error)
	DeleteWishlistEntry(ctx context.Context, userID, id string) error
}

// Gateway groups the repositories backing one remote store.
type Gateway struct {
	Children ChildRepository
	Books    BookRepository
	Records  ReadingRecordRepository
	Wishlist WishlistRepository
}
