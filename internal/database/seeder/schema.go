package seeder

import (
	"context"
	"fmt"

	"opocentral/internal/database"
)

type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

// Run creates the tables the repositories expect. Statements are
// idempotent so the seeder is safe to run on every boot.
func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			user_type TEXT NOT NULL DEFAULT 'Jovem',
			full_name TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			education TEXT NOT NULL DEFAULT '',
			skills TEXT[] NOT NULL DEFAULT '{}',
			interests TEXT[] NOT NULL DEFAULT '{}',
			social_media JSONB NOT NULL DEFAULT '{}',
			saved_opportunities UUID[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS opportunities (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT '',
			requirements TEXT[] NOT NULL DEFAULT '{}',
			benefits TEXT[] NOT NULL DEFAULT '{}',
			salary TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'active',
			deadline TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			created_by UUID
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			user_id UUID NOT NULL REFERENCES users(id),
			opportunity_id UUID NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, opportunity_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_opportunities_status_created_at
			ON opportunities (status, created_at DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
