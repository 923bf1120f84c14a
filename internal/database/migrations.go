package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if it does not exist yet.
// Timestamps are stored as RFC 3339 UTC strings, not native datetimes; see
// helpers.go for the canonical read/write formats.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			sort_order TEXT NOT NULL DEFAULT 'created_desc',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS columns (
			id TEXT PRIMARY KEY,
			deck_id TEXT NOT NULL,
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			deleted_at TEXT,
			FOREIGN KEY (deck_id) REFERENCES decks(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_columns_deck_id ON columns(deck_id)`,
		`CREATE INDEX IF NOT EXISTS idx_columns_deleted_at ON columns(deleted_at)`,
		`CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			column_id TEXT NOT NULL,
			content TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			deleted_at TEXT,
			deleted_with_column INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (column_id) REFERENCES columns(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cards_column_id ON cards(column_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cards_deleted_at ON cards(deleted_at)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS card_tags (
			card_id TEXT NOT NULL,
			tag_id TEXT NOT NULL,
			PRIMARY KEY (card_id, tag_id),
			FOREIGN KEY (card_id) REFERENCES cards(id),
			FOREIGN KEY (tag_id) REFERENCES tags(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_card_tags_tag_id ON card_tags(tag_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
