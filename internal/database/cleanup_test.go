package database

import (
	"context"
	"database/sql"
	"log"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// backdateDeletion rewrites a row's deleted_at to simulate an old deletion
func backdateDeletion(t *testing.T, db *sql.DB, table, id string, daysAgo int) {
	t.Helper()
	stamp := formatTime(time.Now().AddDate(0, 0, -daysAgo))
	if _, err := db.Exec(
		`UPDATE `+table+` SET deleted_at = ? WHERE id = ?`, stamp, id); err != nil {
		t.Fatalf("Failed to backdate deletion: %v", err)
	}
}

func TestCleanupRespectsRetentionThreshold(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	oldCard := createTestCard(t, repo, col.ID, "ancient")
	recentCard := createTestCard(t, repo, col.ID, "fresh")

	if err := repo.SoftDeleteCard(context.Background(), oldCard.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}
	if err := repo.SoftDeleteCard(context.Background(), recentCard.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}
	backdateDeletion(t, db, "cards", oldCard.ID, 40)

	result, err := repo.RunCleanupWithRetention(context.Background(), 30)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if result.Cards != 1 {
		t.Errorf("Expected 1 purged card, got %d", result.Cards)
	}

	// The old card is physically gone, the recent one still restorable
	if _, err := repo.GetCardByID(context.Background(), oldCard.ID); err == nil {
		t.Error("Old card should be purged")
	}
	if _, err := repo.GetCardByID(context.Background(), recentCard.ID); err != nil {
		t.Errorf("Recent card should survive cleanup: %v", err)
	}
}

func TestCleanupPurgesColumnHoldingIndependentlyDeletedCard(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "trashed first")

	// Card trashed on its own, column trashed afterwards: the card carries no
	// provenance flag but must still be purged with (before) its column, or
	// the foreign key on cards.column_id would abort the whole batch.
	if err := repo.SoftDeleteCard(context.Background(), card.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}
	if err := repo.SoftDeleteColumn(context.Background(), col.ID); err != nil {
		t.Fatalf("Failed to soft-delete column: %v", err)
	}
	backdateDeletion(t, db, "cards", card.ID, 31)
	backdateDeletion(t, db, "columns", col.ID, 31)

	result, err := repo.RunCleanupWithRetention(context.Background(), 30)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if result.Cards != 1 || result.Columns != 1 {
		t.Errorf("Expected 1 card and 1 column purged, got %+v", result)
	}
}

func TestCleanupPurgesOldColumns(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "inside")

	if err := repo.SoftDeleteColumn(context.Background(), col.ID); err != nil {
		t.Fatalf("Failed to soft-delete column: %v", err)
	}
	backdateDeletion(t, db, "columns", col.ID, 45)
	backdateDeletion(t, db, "cards", card.ID, 45)

	result, err := repo.RunCleanupWithRetention(context.Background(), 30)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if result.Columns != 1 {
		t.Errorf("Expected 1 purged column, got %d", result.Columns)
	}
	if result.Cards != 1 {
		t.Errorf("Expected 1 purged card, got %d", result.Cards)
	}
}

func TestCleanupReclaimsOrphanTags(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	card := createTestCard(t, repo, col.ID, "#orphan and #kept")
	if _, err := repo.SyncCardTags(context.Background(), card.ID, card.Content); err != nil {
		t.Fatalf("Failed to sync tags: %v", err)
	}

	// Editing the card strands #orphan with no remaining links
	updated, err := repo.UpdateCardContent(context.Background(), card.ID, "#kept only")
	if err != nil {
		t.Fatalf("Failed to update content: %v", err)
	}
	if _, err := repo.SyncCardTags(context.Background(), updated.ID, updated.Content); err != nil {
		t.Fatalf("Failed to re-sync tags: %v", err)
	}

	result, err := repo.RunCleanupWithRetention(context.Background(), 30)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if result.OrphanTags != 1 {
		t.Errorf("Expected 1 orphan tag purged, got %d", result.OrphanTags)
	}

	var tagCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM tags`).Scan(&tagCount); err != nil {
		t.Fatalf("Failed to count tags: %v", err)
	}
	if tagCount != 1 {
		t.Errorf("Expected only #kept to remain, got %d tags", tagCount)
	}
}

func TestCleanupRemovesLinksOfPurgedCards(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	card := createTestCard(t, repo, col.ID, "#doomed")
	if _, err := repo.SyncCardTags(context.Background(), card.ID, card.Content); err != nil {
		t.Fatalf("Failed to sync tags: %v", err)
	}
	if err := repo.SoftDeleteCard(context.Background(), card.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}
	backdateDeletion(t, db, "cards", card.ID, 60)

	result, err := repo.RunCleanupWithRetention(context.Background(), 30)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if result.Cards != 1 {
		t.Errorf("Expected 1 purged card, got %d", result.Cards)
	}
	// The card's tag lost its only link, so it goes in the same pass
	if result.OrphanTags != 1 {
		t.Errorf("Expected 1 orphan tag purged, got %d", result.OrphanTags)
	}

	var linkCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM card_tags`).Scan(&linkCount); err != nil {
		t.Fatalf("Failed to count links: %v", err)
	}
	if linkCount != 0 {
		t.Errorf("Expected 0 links after purge, got %d", linkCount)
	}
}

func TestCleanupEmptyTrashIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	createTestCard(t, repo, col.ID, "alive")

	result, err := repo.RunCleanupWithRetention(context.Background(), 30)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if result.Cards != 0 || result.Columns != 0 || result.OrphanTags != 0 {
		t.Errorf("Expected zero counts, got %+v", result)
	}
}
