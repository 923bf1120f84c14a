package deck

import (
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/models"
	_ "modernc.org/sqlite"
)

func setupService(t *testing.T) (Service, func()) {
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
	return NewService(repo), cleanup
}

func TestCreateDeckDefaultsSortOrder(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	deck, err := svc.CreateDeck(context.Background(), CreateDeckRequest{Name: "Notes"})
	if err != nil {
		t.Fatalf("Failed to create deck: %v", err)
	}
	if deck.SortOrder != models.DefaultSortOrder {
		t.Errorf("Expected default sort order, got %s", deck.SortOrder)
	}
}

func TestCreateDeckValidation(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	if _, err := svc.CreateDeck(context.Background(), CreateDeckRequest{}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}

	long := strings.Repeat("x", 256)
	if _, err := svc.CreateDeck(context.Background(), CreateDeckRequest{Name: long}); !errors.Is(err, ErrNameTooLong) {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestUpdateDeckValidation(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	empty := ""
	if _, err := svc.UpdateDeck(context.Background(), UpdateDeckRequest{DeckID: "id", Name: &empty}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if _, err := svc.UpdateDeck(context.Background(), UpdateDeckRequest{}); !errors.Is(err, ErrInvalidDeckID) {
		t.Errorf("Expected ErrInvalidDeckID, got %v", err)
	}
}

func TestDeleteDeckNotFoundPropagates(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	if err := svc.DeleteDeck(context.Background(), "missing"); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
