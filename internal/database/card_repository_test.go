package database

import (
	"context"
	"errors"
	"log"
	"testing"

	_ "modernc.org/sqlite"
)

func TestCreateCardAppends(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	card1 := createTestCard(t, repo, col.ID, "first")
	card2 := createTestCard(t, repo, col.ID, "second")

	if card1.Position != 0 || card2.Position != 1 {
		t.Errorf("Expected positions 0,1, got %d,%d", card1.Position, card2.Position)
	}
	if card1.Score != 0 {
		t.Errorf("New card should have score 0, got %d", card1.Score)
	}
}

func TestCreateCardAtShiftsSiblings(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	createTestCard(t, repo, col.ID, "first")
	createTestCard(t, repo, col.ID, "second")

	inserted, err := repo.CreateCardAt(context.Background(), col.ID, "urgent", 0)
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}
	if inserted.Position != 0 {
		t.Errorf("Expected position 0, got %d", inserted.Position)
	}

	cards, _ := repo.GetCardsByColumn(context.Background(), col.ID)
	if cards[0].Content != "urgent" || cards[1].Content != "first" || cards[2].Content != "second" {
		t.Errorf("Card order incorrect: %s, %s, %s", cards[0].Content, cards[1].Content, cards[2].Content)
	}
	verifyContiguous(t, activePositions(t, db, "cards", "column_id", col.ID))
}

func TestMoveCardWithinColumn(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	cardA := createTestCard(t, repo, col.ID, "a")
	createTestCard(t, repo, col.ID, "b")
	createTestCard(t, repo, col.ID, "c")

	moved, err := repo.MoveCard(context.Background(), cardA.ID, 2)
	if err != nil {
		t.Fatalf("Failed to move card: %v", err)
	}
	if moved.Position != 2 {
		t.Errorf("Expected position 2, got %d", moved.Position)
	}

	cards, _ := repo.GetCardsByColumn(context.Background(), col.ID)
	if cards[0].Content != "b" || cards[1].Content != "c" || cards[2].Content != "a" {
		t.Errorf("Card order incorrect: %s, %s, %s", cards[0].Content, cards[1].Content, cards[2].Content)
	}
	verifyContiguous(t, activePositions(t, db, "cards", "column_id", col.ID))
}

func TestMoveCardToColumn(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	src := createTestColumn(t, repo, deck.ID, "Todo")
	dst := createTestColumn(t, repo, deck.ID, "Done")

	cardA := createTestCard(t, repo, src.ID, "a")
	createTestCard(t, repo, src.ID, "b")
	createTestCard(t, repo, dst.ID, "existing")

	moved, err := repo.MoveCardToColumn(context.Background(), cardA.ID, dst.ID)
	if err != nil {
		t.Fatalf("Failed to move card: %v", err)
	}
	if moved.ColumnID != dst.ID {
		t.Errorf("Card should be in destination column")
	}
	// Appended after the existing card
	if moved.Position != 1 {
		t.Errorf("Expected position 1 in destination, got %d", moved.Position)
	}

	// Source column compacted
	verifyContiguous(t, activePositions(t, db, "cards", "column_id", src.ID))
	verifyContiguous(t, activePositions(t, db, "cards", "column_id", dst.ID))
}

func TestUpdateCardScoreDelta(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "note")

	card, err := repo.UpdateCardScore(context.Background(), card.ID, 3)
	if err != nil {
		t.Fatalf("Failed to update score: %v", err)
	}
	if card.Score != 3 {
		t.Errorf("Expected score 3, got %d", card.Score)
	}

	// Scores are unbounded and may go negative
	card, err = repo.UpdateCardScore(context.Background(), card.ID, -5)
	if err != nil {
		t.Fatalf("Failed to update score: %v", err)
	}
	if card.Score != -2 {
		t.Errorf("Expected score -2, got %d", card.Score)
	}
}

func TestUpdateDeletedCardRejected(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "note")

	if err := repo.SoftDeleteCard(context.Background(), card.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}

	if _, err := repo.UpdateCardContent(context.Background(), card.ID, "new"); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Expected ErrInvalidOperation on content update, got %v", err)
	}
	if _, err := repo.UpdateCardScore(context.Background(), card.ID, 1); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Expected ErrInvalidOperation on score update, got %v", err)
	}
	if _, err := repo.MoveCard(context.Background(), card.ID, 0); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Expected ErrInvalidOperation on move, got %v", err)
	}
}

func TestSoftDeleteCardFreezesPositionAndCompacts(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	createTestCard(t, repo, col.ID, "a")
	cardB := createTestCard(t, repo, col.ID, "b")
	createTestCard(t, repo, col.ID, "c")

	if err := repo.SoftDeleteCard(context.Background(), cardB.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}

	// Trashed card keeps the position it held at deletion time
	got, _ := repo.GetCardByID(context.Background(), cardB.ID)
	if got.Position != 1 {
		t.Errorf("Trashed card should keep position 1, got %d", got.Position)
	}
	if got.DeletedWithColumn {
		t.Error("Directly deleted card should not carry the cascade flag")
	}

	// Active sequence compacts to 0,1
	cards, _ := repo.GetCardsByColumn(context.Background(), col.ID)
	if len(cards) != 2 {
		t.Fatalf("Expected 2 active cards, got %d", len(cards))
	}
	verifyContiguous(t, activePositions(t, db, "cards", "column_id", col.ID))
}

func TestRestoreCardAtOriginalPosition(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	createTestCard(t, repo, col.ID, "a")
	cardB := createTestCard(t, repo, col.ID, "b")
	createTestCard(t, repo, col.ID, "c")

	if err := repo.SoftDeleteCard(context.Background(), cardB.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}

	restored, err := repo.RestoreCard(context.Background(), cardB.ID)
	if err != nil {
		t.Fatalf("Failed to restore card: %v", err)
	}
	if restored.Position != 1 {
		t.Errorf("Expected restored position 1, got %d", restored.Position)
	}

	cards, _ := repo.GetCardsByColumn(context.Background(), col.ID)
	if cards[0].Content != "a" || cards[1].Content != "b" || cards[2].Content != "c" {
		t.Errorf("Card order incorrect after restore: %s, %s, %s",
			cards[0].Content, cards[1].Content, cards[2].Content)
	}
	verifyContiguous(t, activePositions(t, db, "cards", "column_id", col.ID))
}

func TestRestoreCascadeDeletedCardRejected(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "note")

	if err := repo.SoftDeleteColumn(context.Background(), col.ID); err != nil {
		t.Fatalf("Failed to soft-delete column: %v", err)
	}

	if _, err := repo.RestoreCard(context.Background(), card.ID); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Expected ErrInvalidOperation, got %v", err)
	}
}

func TestRestoreCardIntoDeletedColumnRejected(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "note")

	// Card trashed on its own, then the column trashed afterwards. The card's
	// provenance flag stays false, so only the column check can stop the
	// restore from putting an active card inside a deleted column.
	if err := repo.SoftDeleteCard(context.Background(), card.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}
	if err := repo.SoftDeleteColumn(context.Background(), col.ID); err != nil {
		t.Fatalf("Failed to soft-delete column: %v", err)
	}

	if _, err := repo.RestoreCard(context.Background(), card.ID); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Expected ErrInvalidOperation, got %v", err)
	}

	// Restoring the column first makes the card restorable again
	if _, err := repo.RestoreColumn(context.Background(), col.ID); err != nil {
		t.Fatalf("Failed to restore column: %v", err)
	}
	restored, err := repo.RestoreCard(context.Background(), card.ID)
	if err != nil {
		t.Fatalf("Failed to restore card after column restore: %v", err)
	}
	if restored.Deleted() {
		t.Error("Restored card should be active")
	}
}

func TestGetDeletedCardsByDeck(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col1 := createTestColumn(t, repo, deck.ID, "A")
	col2 := createTestColumn(t, repo, deck.ID, "B")

	card1 := createTestCard(t, repo, col1.ID, "one")
	card2 := createTestCard(t, repo, col2.ID, "two")
	createTestCard(t, repo, col2.ID, "active")

	if err := repo.SoftDeleteCard(context.Background(), card1.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}
	if err := repo.SoftDeleteCard(context.Background(), card2.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}

	trashed, err := repo.GetDeletedCardsByDeck(context.Background(), deck.ID)
	if err != nil {
		t.Fatalf("Failed to get deleted cards: %v", err)
	}
	if len(trashed) != 2 {
		t.Fatalf("Expected 2 trashed cards, got %d", len(trashed))
	}
	// Most recently deleted first
	if trashed[0].ID != card2.ID {
		t.Errorf("Expected card two first, got %s", trashed[0].Content)
	}
}
