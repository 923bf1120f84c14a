package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jotdeck/jotdeck/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations.
// This is the unified test database setup used by all tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// One connection, or each conn would see its own empty :memory: db
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// createTestDeck creates a deck for tests that need a parent scope
func createTestDeck(t *testing.T, repo *Repository) *models.Deck {
	t.Helper()
	deck, err := repo.CreateDeck(context.Background(), "Test Deck", models.DefaultSortOrder)
	if err != nil {
		t.Fatalf("Failed to create deck: %v", err)
	}
	return deck
}

// createTestColumn creates a named column appended to the deck
func createTestColumn(t *testing.T, repo *Repository, deckID, name string) *models.Column {
	t.Helper()
	col, err := repo.CreateColumn(context.Background(), deckID, name)
	if err != nil {
		t.Fatalf("Failed to create column %q: %v", name, err)
	}
	return col
}

// createTestCard creates a card appended to the column
func createTestCard(t *testing.T, repo *Repository, columnID, content string) *models.Card {
	t.Helper()
	card, err := repo.CreateCard(context.Background(), columnID, content)
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	return card
}

// activePositions returns the active positions in a scope in stored order,
// for verifying the contiguity invariant after shifts.
func activePositions(t *testing.T, db *sql.DB, table, parentCol, parentID string) []int {
	t.Helper()
	rows, err := db.Query(
		`SELECT position FROM `+table+` WHERE `+parentCol+` = ? AND deleted_at IS NULL ORDER BY position ASC`,
		parentID)
	if err != nil {
		t.Fatalf("Failed to query positions: %v", err)
	}
	defer rows.Close()

	var positions []int
	for rows.Next() {
		var p int
		if err := rows.Scan(&p); err != nil {
			t.Fatalf("Failed to scan position: %v", err)
		}
		positions = append(positions, p)
	}
	return positions
}

// verifyContiguous checks that positions are exactly 0..n-1
func verifyContiguous(t *testing.T, positions []int) {
	t.Helper()
	for i, p := range positions {
		if p != i {
			t.Errorf("Position %d should be %d, got %d (full: %v)", i, i, p, positions)
			return
		}
	}
}
