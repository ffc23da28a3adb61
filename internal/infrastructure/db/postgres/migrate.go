package postgres

import (
	"context"
	"fmt"
)

// schema is idempotent and safe to apply on every start.
//
// A role cannot be removed while users reference it. Removing a user removes
// its player and agent profiles and clears it as manager of any club.
const schema = `
CREATE TABLE IF NOT EXISTS roles (
	id   SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	CONSTRAINT roles_name_key UNIQUE (name)
);

CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	role_id       INTEGER NOT NULL,
	full_name     TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	phone         TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT users_email_key UNIQUE (email),
	CONSTRAINT users_role_id_fkey FOREIGN KEY (role_id) REFERENCES roles(id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS players (
	id          BIGSERIAL PRIMARY KEY,
	user_id     BIGINT NOT NULL,
	position    TEXT,
	height_cm   INTEGER,
	weight_kg   INTEGER,
	nationality TEXT,
	dob         DATE,
	bio         TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT players_user_id_key UNIQUE (user_id),
	CONSTRAINT players_user_id_fkey FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS agents (
	id             BIGSERIAL PRIMARY KEY,
	user_id        BIGINT NOT NULL,
	agency_name    TEXT,
	license_number TEXT,
	region         TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT agents_user_id_key UNIQUE (user_id),
	CONSTRAINT agents_user_id_fkey FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS clubs (
	id              BIGSERIAL PRIMARY KEY,
	name            TEXT NOT NULL,
	country         TEXT,
	manager_user_id BIGINT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT clubs_manager_user_id_fkey FOREIGN KEY (manager_user_id) REFERENCES users(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_users_role_id ON users(role_id);
CREATE INDEX IF NOT EXISTS idx_clubs_manager_user_id ON clubs(manager_user_id);
`

// Migrate creates the tables and constraints if they do not exist.
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
