package app

import (
	"context"
	"fmt"

	"readinglog/internal/entity"
)

// FetchBooks reloads the user's books, newest first.
func (s *Session) FetchBooks(ctx context.Context) ([]entity.Book, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	s.booksMu.Lock()
	defer s.booksMu.Unlock()

	err := s.reloadBooks(ctx)
	return s.Books(), err
}

func (s *Session) reloadBooks(ctx context.Context) error {
	books, err := s.gw.Books.ListBooks(ctx, s.userID)
	if err != nil {
		s.fetchFailed("books", err)
		return fmt.Errorf("fetch books: %w", err)
	}
	s.mu.Lock()
	s.books = books
	s.mu.Unlock()
	return nil
}

// AddBook creates a book, reloads the books and returns the new id. On
// failure the id is empty.
func (s *Session) AddBook(ctx context.Context, in entity.BookInput) (string, error) {
	if err := validate(in); err != nil {
		return "", err
	}
	var id string
	err := s.mutate(OpSaveBook, &s.booksMu,
		func() error {
			b, err := s.gw.Books.CreateBook(ctx, s.userID, in)
			if err != nil {
				return fmt.Errorf("create book: %w", err)
			}
			id = b.ID
			return nil
		},
		func() error { return s.reloadBooks(ctx) },
	)
	if err != nil {
		return "", err
	}
	return id, nil
}
