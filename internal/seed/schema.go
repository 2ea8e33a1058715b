package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE SCHEMA IF NOT EXISTS pasithulir`,
	`CREATE TABLE IF NOT EXISTS pasithulir.donations (
		id text PRIMARY KEY,
		donor_name text NOT NULL,
		organization_type text NOT NULL DEFAULT '',
		contact_number text NOT NULL,
		email text,
		address text NOT NULL,
		food_type text NOT NULL,
		quantity text NOT NULL,
		expiry_time timestamptz NOT NULL,
		description text,
		finished boolean NOT NULL DEFAULT false,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS pasithulir.requests (
		id text PRIMARY KEY,
		organization_name text NOT NULL,
		organization_type text NOT NULL,
		contact_person text NOT NULL,
		contact_number text NOT NULL,
		email text,
		address text NOT NULL,
		people_count integer NOT NULL,
		urgency_level text NOT NULL,
		preferred_time text NOT NULL DEFAULT '',
		dietary_restrictions text,
		description text,
		status text,
		finished boolean NOT NULL DEFAULT false,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS pasithulir.board_items (
		id text PRIMARY KEY,
		donor_name text NOT NULL,
		location text NOT NULL,
		distance text NOT NULL,
		food_type text NOT NULL,
		quantity text NOT NULL,
		time_left text NOT NULL,
		urgency text NOT NULL,
		description text NOT NULL,
		contact_number text NOT NULL,
		verified boolean NOT NULL DEFAULT false,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS pasithulir.contact_messages (
		id text PRIMARY KEY,
		name text NOT NULL,
		email text NOT NULL,
		phone text,
		subject text NOT NULL,
		message text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the schema and tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
