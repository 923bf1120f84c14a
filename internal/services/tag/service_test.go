package tag

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/models"
	_ "modernc.org/sqlite"
)

func setupService(t *testing.T, suggestLimit int) (Service, *database.Repository, func()) {
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
	return NewService(repo, suggestLimit), repo, cleanup
}

func TestSuggestTagsHonorsConfiguredLimit(t *testing.T) {
	svc, repo, cleanup := setupService(t, 2)
	defer cleanup()

	deck, err := repo.CreateDeck(context.Background(), "Deck", models.DefaultSortOrder)
	if err != nil {
		t.Fatalf("Failed to create deck: %v", err)
	}
	col, err := repo.CreateColumn(context.Background(), deck.ID, "Notes")
	if err != nil {
		t.Fatalf("Failed to create column: %v", err)
	}
	card, err := repo.CreateCard(context.Background(), col.ID, "")
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	if _, err := repo.SyncCardTags(context.Background(), card.ID, "#goa #gob #goc"); err != nil {
		t.Fatalf("Failed to sync tags: %v", err)
	}

	suggestions, err := svc.SuggestTags(context.Background(), deck.ID, "go")
	if err != nil {
		t.Fatalf("Failed to suggest tags: %v", err)
	}
	if len(suggestions) != 2 {
		t.Errorf("Expected suggestions capped at 2, got %d", len(suggestions))
	}
}

func TestTagServiceValidation(t *testing.T) {
	svc, _, cleanup := setupService(t, 0)
	defer cleanup()

	if _, err := svc.ListTagsByDeck(context.Background(), ""); !errors.Is(err, ErrInvalidDeckID) {
		t.Errorf("Expected ErrInvalidDeckID, got %v", err)
	}
	if _, err := svc.ListCardIDsByTag(context.Background(), "deck", ""); !errors.Is(err, ErrEmptyTagName) {
		t.Errorf("Expected ErrEmptyTagName, got %v", err)
	}
	if _, err := svc.SyncCardTags(context.Background(), "", "#x"); !errors.Is(err, ErrInvalidCardID) {
		t.Errorf("Expected ErrInvalidCardID, got %v", err)
	}
}
