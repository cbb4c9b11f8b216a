package store

import (
	"context"
	"time"

	"readinglog/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChildPG struct {
	pgBase
}

func NewChildPG(db *pgxpool.Pool, timeout time.Duration) *ChildPG {
	return &ChildPG{pgBase{db: db, timeout: timeout}}
}

const childColumns = `id, user_id, name, birthday::text, created_at, updated_at`

func (r *ChildPG) ListChildren(ctx context.Context, userID string) ([]entity.Child, error) {
	const query = `
		SELECT ` + childColumns + `
		FROM children
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

	children := []entity.Child{}
	for rows.Next() {
		var c entity.Child
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Birthday, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, rows.Err()
}

func (r *ChildPG) CreateChild(ctx context.Context, userID string, in entity.ChildInput) (entity.Child, error) {
	const query = `
		INSERT INTO children (user_id, name, birthday)
		VALUES ($1, $2, $3::date)
		RETURNING ` + childColumns
	var c entity.Child
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, userID, in.Name, in.Birthday).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Birthday, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return entity.Child{}, mapPGError(err)
	}
	return c, nil
}

func (r *ChildPG) UpdateChild(ctx context.Context, userID, id string, in entity.ChildInput) (entity.Child, error) {
	const query = `
		UPDATE children
		SET name = $3, birthday = $4::date, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + childColumns
	var c entity.Child
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id, userID, in.Name, in.Birthday).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Birthday, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return entity.Child{}, mapPGError(err)
	}
	return c, nil
}

func (r *ChildPG) DeleteChild(ctx context.Context, userID, id string) error {
	return r.exec(ctx, `DELETE FROM children WHERE id = $1 AND user_id = $2`, id, userID)
}
