package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"readinglog/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WishlistPG struct {
	pgBase
}

func NewWishlistPG(db *pgxpool.Pool, timeout time.Duration) *WishlistPG {
	return &WishlistPG{pgBase{db: db, timeout: timeout}}
}

const wishlistColumns = `id, user_id, child_id, title, COALESCE(author, ''), COALESCE(image_url, ''), rating, created_at, updated_at`

func scanWishlistEntry(row pgx.Row) (entity.WishlistEntry, error) {
	var w entity.WishlistEntry
	err := row.Scan(&w.ID, &w.UserID, &w.ChildID, &w.Title, &w.Author, &w.ImageURL, &w.Rating, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

func (r *WishlistPG) ListWishlist(ctx context.Context, scope Scope) ([]entity.WishlistEntry, error) {
	query := `SELECT ` + wishlistColumns + ` FROM wishlist_entries WHERE user_id = $1`
	args := []any{scope.UserID}
	if scope.ChildID != "" {
		query += fmt.Sprintf(" AND child_id = $%d", len(args)+1)
		args = append(args, scope.ChildID)
	}
	query += " ORDER BY created_at DESC"

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []entity.WishlistEntry{}
	for rows.Next() {
		w, err := scanWishlistEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, w)
	}
	return entries, rows.Err()
}

func (r *WishlistPG) CreateWishlistEntry(ctx context.Context, userID string, in entity.WishlistInput) (entity.WishlistEntry, error) {
	const query = `
		INSERT INTO wishlist_entries (user_id, child_id, title, author, image_url, rating)
		SELECT $1::text, $2::uuid, $3::text, $4::text, $5::text, $6::double precision
		WHERE EXISTS (SELECT 1 FROM children WHERE id = $2 AND user_id = $1)
		RETURNING ` + wishlistColumns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	w, err := scanWishlistEntry(r.db.QueryRow(timeoutCtx, query,
		userID, in.ChildID, in.Title, nullable(in.Author), nullable(in.ImageURL), in.Rating))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.WishlistEntry{}, ErrInvalidReference
		}
		return entity.WishlistEntry{}, mapPGError(err)
	}
	return w, nil
}

func (r *WishlistPG) DeleteWishlistEntry(ctx context.Context, userID, id string) error {
	return r.exec(ctx, `DELETE FROM wishlist_entries WHERE id = $1 AND user_id = $2`, id, userID)
}
