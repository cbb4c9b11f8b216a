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

type ReadingRecordPG struct {
	pgBase
}

func NewReadingRecordPG(db *pgxpool.Pool, timeout time.Duration) *ReadingRecordPG {
	return &ReadingRecordPG{pgBase{db: db, timeout: timeout}}
}

const recordJoinColumns = `
	rr.id, rr.user_id, rr.child_id, rr.book_id, rr.rating, COALESCE(rr.review, ''), rr.read_date::text,
	rr.created_at, rr.updated_at, b.title, COALESCE(b.author, ''), COALESCE(b.image_url, '')`

func scanRecord(row pgx.Row) (entity.ReadingRecord, error) {
	var rec entity.ReadingRecord
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.ChildID, &rec.BookID, &rec.Rating, &rec.Review, &rec.ReadDate,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.Book.Title, &rec.Book.Author, &rec.Book.ImageURL,
	)
	return rec, err
}

func (r *ReadingRecordPG) ListReadingRecords(ctx context.Context, scope Scope) ([]entity.ReadingRecord, error) {
	query := `
		SELECT ` + recordJoinColumns + `
		FROM reading_records rr
		JOIN books b ON b.id = rr.book_id
		WHERE rr.user_id = $1`
	args := []any{scope.UserID}
	if scope.ChildID != "" {
		query += fmt.Sprintf(" AND rr.child_id = $%d", len(args)+1)
		args = append(args, scope.ChildID)
	}
	query += " ORDER BY rr.created_at DESC"

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []entity.ReadingRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CreateReadingRecord inserts only when both the child and the book belong to
// the user; otherwise it reports ErrInvalidReference.
func (r *ReadingRecordPG) CreateReadingRecord(ctx context.Context, userID string, in entity.ReadingRecordInput) (entity.ReadingRecord, error) {
	const query = `
		WITH rr AS (
			INSERT INTO reading_records (user_id, child_id, book_id, rating, review, read_date)
			SELECT $1::text, $2::uuid, $3::uuid, $4::int, $5::text, $6::date
			WHERE EXISTS (SELECT 1 FROM children WHERE id = $2 AND user_id = $1)
			  AND EXISTS (SELECT 1 FROM books WHERE id = $3 AND user_id = $1)
			RETURNING *
		)
		SELECT ` + recordJoinColumns + `
		FROM rr
		JOIN books b ON b.id = rr.book_id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rec, err := scanRecord(r.db.QueryRow(timeoutCtx, query,
		userID, in.ChildID, in.BookID, in.Rating, nullable(in.Review), in.ReadDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ReadingRecord{}, ErrInvalidReference
		}
		return entity.ReadingRecord{}, mapPGError(err)
	}
	return rec, nil
}

func (r *ReadingRecordPG) UpdateReadingRecord(ctx context.Context, userID, id string, in entity.ReadingRecordInput) (entity.ReadingRecord, error) {
	const query = `
		WITH rr AS (
			UPDATE reading_records
			SET book_id = $3, rating = $4, review = $5, read_date = $6::date,
			    child_id = COALESCE(NULLIF($7, '')::uuid, child_id), updated_at = NOW()
			WHERE id = $1 AND user_id = $2
			  AND EXISTS (SELECT 1 FROM books WHERE id = $3 AND user_id = $2)
			  AND (NULLIF($7, '') IS NULL
			       OR EXISTS (SELECT 1 FROM children WHERE id = NULLIF($7, '')::uuid AND user_id = $2))
			RETURNING *
		)
		SELECT ` + recordJoinColumns + `
		FROM rr
		JOIN books b ON b.id = rr.book_id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rec, err := scanRecord(r.db.QueryRow(timeoutCtx, query,
		id, userID, in.BookID, in.Rating, nullable(in.Review), in.ReadDate, in.ChildID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) && in.ChildID != "" {
			return entity.ReadingRecord{}, r.missingChild(ctx, userID, in.ChildID)
		}
		return entity.ReadingRecord{}, mapPGError(err)
	}
	return rec, nil
}

// missingChild tells a move to a child the user does not own apart from a
// missing record or book after an update matched no row.
func (r *ReadingRecordPG) missingChild(ctx context.Context, userID, childID string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var owned bool
	err := r.db.QueryRow(timeoutCtx,
		`SELECT EXISTS (SELECT 1 FROM children WHERE id::text = $1 AND user_id = $2)`,
		childID, userID).Scan(&owned)
	if err != nil {
		return mapPGError(err)
	}
	if !owned {
		return ErrInvalidReference
	}
	return ErrNotFound
}

func (r *ReadingRecordPG) DeleteReadingRecord(ctx context.Context, userID, id string) error {
	return r.exec(ctx, `DELETE FROM reading_records WHERE id = $1 AND user_id = $2`, id, userID)
}
