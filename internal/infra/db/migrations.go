package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements executed in order on startup. Each statement is
// idempotent so repeated boots are safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		line_user_id TEXT,
		line_display_name TEXT,
		line_linked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_line_user_id_idx ON users (line_user_id) WHERE line_user_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS casts (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		nickname TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS call_requests (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		place TEXT NOT NULL DEFAULT '',
		date DATE NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		total_price BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cast_shifts (
		id BIGSERIAL PRIMARY KEY,
		cast_id BIGINT NOT NULL REFERENCES casts(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME NOT NULL,
		is_reserved BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS assignments (
		id BIGSERIAL PRIMARY KEY,
		call_request_id BIGINT NOT NULL REFERENCES call_requests(id) ON DELETE CASCADE,
		cast_id BIGINT NOT NULL REFERENCES casts(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'invited',
		note TEXT,
		invited_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		responded_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (call_request_id, cast_id)
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id BIGSERIAL PRIMARY KEY,
		call_request_id BIGINT REFERENCES call_requests(id) ON DELETE CASCADE,
		assignment_id BIGINT REFERENCES assignments(id) ON DELETE SET NULL,
		cast_id BIGINT NOT NULL REFERENCES casts(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'started',
		duration_minutes INT NOT NULL DEFAULT 60,
		started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		ended_at TIMESTAMPTZ,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS line_link_codes (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		code TEXT NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		used_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}
