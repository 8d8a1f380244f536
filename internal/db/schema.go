package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Timestamps are seconds since epoch so
// they round-trip as plain integers through the API.
const schema = `
CREATE TABLE IF NOT EXISTS totes (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    qr_code_url TEXT,
    created_at  INTEGER NOT NULL DEFAULT (cast(strftime('%s','now') as int))
);

CREATE TABLE IF NOT EXISTS items (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    brand       TEXT,
    quantity    INTEGER NOT NULL DEFAULT 1 CHECK (quantity > 0),
    tote_id     TEXT REFERENCES totes(id) ON DELETE CASCADE,
    created_at  INTEGER NOT NULL DEFAULT (cast(strftime('%s','now') as int))
);

CREATE INDEX IF NOT EXISTS idx_items_tote_id ON items(tote_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
