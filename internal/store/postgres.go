package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgForeignKeyViolation = "23503"

// NewPostgres returns a Gateway whose repositories share one pool.
func NewPostgres(db *pgxpool.Pool, timeout time.Duration) *Gateway {
	return &Gateway{
		Children: NewChildPG(db, timeout),
		Books:    NewBookPG(db, timeout),
		Records:  NewReadingRecordPG(db, timeout),
		Wishlist: NewWishlistPG(db, timeout),
	}
}

type pgBase struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func (r pgBase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// exec runs a statement that must touch exactly one of the user's rows.
func (r pgBase) exec(ctx context.Context, sql string, args ...any) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, args...)
	if err != nil {
		return mapPGError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func mapPGError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return ErrInvalidReference
	}
	return err
}

// nullable turns an empty string into SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
