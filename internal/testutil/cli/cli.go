// Package cli holds the CLI test harness. It is isolated from the main
// testutil package so service tests can import testutil without dragging in
// the app container.
package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jotdeck/jotdeck/internal/app"
	"github.com/jotdeck/jotdeck/internal/config"
	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	return db, app.New(repo, config.Default())
}

// ExecuteCLICommand executes a CLI command against a test app instance. The
// app travels through the command context so GetCLIFromContext picks it up
// instead of opening the real database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)
	ctxWithApp := context.WithValue(context.Background(), testutil.TestAppKey, testApp)
	cmd.SetContext(ctxWithApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}

// CreateTestDeck creates a deck directly against the database and returns its ID
func CreateTestDeck(t *testing.T, db *sql.DB, name string) string {
	t.Helper()
	return testutil.CreateTestDeck(t, database.NewRepository(db), name)
}

// CreateTestColumn creates a column and returns its ID
func CreateTestColumn(t *testing.T, db *sql.DB, deckID, name string) string {
	t.Helper()
	return testutil.CreateTestColumn(t, database.NewRepository(db), deckID, name)
}

// CreateTestCard creates a card and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, columnID, content string) string {
	t.Helper()
	return testutil.CreateTestCard(t, database.NewRepository(db), columnID, content)
}
