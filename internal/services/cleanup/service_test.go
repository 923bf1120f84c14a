package cleanup

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/models"
	_ "modernc.org/sqlite"
)

func setupService(t *testing.T) (Service, *database.Repository, func()) {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to init database: %v", err)
	}
	repo := database.NewRepository(db)
	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}
	return NewService(repo, 30), repo, cleanup
}

func TestRunWithThresholdPurgesTrash(t *testing.T) {
	svc, repo, cleanup := setupService(t)
	defer cleanup()

	deck, err := repo.CreateDeck(context.Background(), "Deck", models.DefaultSortOrder)
	if err != nil {
		t.Fatalf("Failed to create deck: %v", err)
	}
	col, err := repo.CreateColumn(context.Background(), deck.ID, "Notes")
	if err != nil {
		t.Fatalf("Failed to create column: %v", err)
	}
	card, err := repo.CreateCard(context.Background(), col.ID, "old note")
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	if err := repo.SoftDeleteCard(context.Background(), card.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}

	// A cutoff in the future catches the deletion that just happened
	result, err := svc.RunWithThreshold(context.Background(), time.Now().UTC().Add(time.Minute))
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if result.Cards != 1 {
		t.Errorf("Expected 1 purged card, got %d", result.Cards)
	}
}

func TestRunWithinRetentionIsNoOp(t *testing.T) {
	svc, repo, cleanup := setupService(t)
	defer cleanup()

	deck, err := repo.CreateDeck(context.Background(), "Deck", models.DefaultSortOrder)
	if err != nil {
		t.Fatalf("Failed to create deck: %v", err)
	}
	col, err := repo.CreateColumn(context.Background(), deck.ID, "Notes")
	if err != nil {
		t.Fatalf("Failed to create column: %v", err)
	}
	card, err := repo.CreateCard(context.Background(), col.ID, "fresh note")
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	if err := repo.SoftDeleteCard(context.Background(), card.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}

	// Deleted seconds ago, so a 30-day window keeps it
	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if result.Cards != 0 || result.Columns != 0 {
		t.Errorf("Fresh trash should survive the retention window, got %+v", result)
	}
}
