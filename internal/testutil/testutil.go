package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/models"
	_ "modernc.org/sqlite"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey carries a test *app.App through the command context so CLI
// integration tests run against an in-memory database.
const TestAppKey ContextKey = "testApp"

// SetupTestDB creates an in-memory database with the full schema applied
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	return db
}

// CreateTestDeck creates a deck and returns its ID
func CreateTestDeck(t *testing.T, repo *database.Repository, name string) string {
	t.Helper()

	deck, err := repo.CreateDeck(context.Background(), name, models.DefaultSortOrder)
	if err != nil {
		t.Fatalf("Failed to create test deck: %v", err)
	}
	return deck.ID
}

// CreateTestColumn creates a column and returns its ID
func CreateTestColumn(t *testing.T, repo *database.Repository, deckID, name string) string {
	t.Helper()

	col, err := repo.CreateColumn(context.Background(), deckID, name)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return col.ID
}

// CreateTestCard creates a card and returns its ID
func CreateTestCard(t *testing.T, repo *database.Repository, columnID, content string) string {
	t.Helper()

	card, err := repo.CreateCard(context.Background(), columnID, content)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	return card.ID
}

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}
