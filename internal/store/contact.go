package store

import (
	"context"
	"fmt"

	"pasithulir/pkg/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) CreateContactMessage(ctx context.Context, name, email, phone, subject, message string) error {
	id, err := gonanoid.New(21)
	if err != nil {
		return fmt.Errorf("generate id: %w", err)
	}

	query, args, err := psql().
		Insert("contact_messages").
		Columns("id", "name", "email", "phone", "subject", "message").
		Values(id, name, email, nullable(phone), subject, message).
		ToSql()
	if err != nil {
		return fmt.Errorf("build contact insert: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}

	return nil
}

func (r *ContactRepository) LatestContactMessages(ctx context.Context, limit uint64) ([]*types.ContactMessage, error) {
	query, args, err := psql().
		Select("id", "name", "email", "phone", "subject", "message", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest contact query: %w", err)
	}

	out := make([]*types.ContactMessage, 0)
	if err := pgxscan.Select(ctx, r.pool, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select latest contact messages: %w", err)
	}

	return out, nil
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
