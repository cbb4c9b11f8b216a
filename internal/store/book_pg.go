package store

import (
	"context"
	"time"

	"readinglog/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	pgBase
}

func NewBookPG(db *pgxpool.Pool, timeout time.Duration) *BookPG {
	return &BookPG{pgBase{db: db, timeout: timeout}}
}

const bookColumns = `id, user_id, title, COALESCE(author, ''), COALESCE(image_url, ''), created_at, updated_at`

func (r *BookPG) ListBooks(ctx context.Context, userID string) ([]entity.Book, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookPG) CreateBook(ctx context.Context, userID string, in entity.BookInput) (entity.Book, error) {
	const query = `
		INSERT INTO books (user_id, title, author, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + bookColumns
	var b entity.Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, userID, in.Title, nullable(in.Author), nullable(in.ImageURL)).
		Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return entity.Book{}, mapPGError(err)
	}
	return b, nil
}
