package database

import (
	"context"
	"log"
	"testing"

	_ "modernc.org/sqlite"
)

func TestSyncCardTagsCreatesLinks(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "read #golang and #sqlite notes")

	tags, err := repo.SyncCardTags(context.Background(), card.ID, card.Content)
	if err != nil {
		t.Fatalf("Failed to sync tags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("Expected 2 tags, got %d", len(tags))
	}

	linked, err := repo.GetTagsByCard(context.Background(), card.ID)
	if err != nil {
		t.Fatalf("Failed to get card tags: %v", err)
	}
	if len(linked) != 2 || linked[0].Name != "golang" || linked[1].Name != "sqlite" {
		t.Errorf("Unexpected linked tags: %+v", linked)
	}
}

func TestSyncCardTagsDeduplicatesRepeats(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "#x again #x and #x")

	tags, err := repo.SyncCardTags(context.Background(), card.ID, card.Content)
	if err != nil {
		t.Fatalf("Failed to sync tags: %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "x" {
		t.Errorf("Repeated token should yield one tag, got %+v", tags)
	}
}

func TestSyncCardTagsRemovesStaleLeavesOrphanRow(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "#old note")

	if _, err := repo.SyncCardTags(context.Background(), card.ID, card.Content); err != nil {
		t.Fatalf("Failed to sync tags: %v", err)
	}

	updated, err := repo.UpdateCardContent(context.Background(), card.ID, "#new note")
	if err != nil {
		t.Fatalf("Failed to update content: %v", err)
	}
	if _, err := repo.SyncCardTags(context.Background(), updated.ID, updated.Content); err != nil {
		t.Fatalf("Failed to re-sync tags: %v", err)
	}

	linked, _ := repo.GetTagsByCard(context.Background(), card.ID)
	if len(linked) != 1 || linked[0].Name != "new" {
		t.Errorf("Expected only #new linked, got %+v", linked)
	}

	// The stale tag's row survives unlinking; cleanup reclaims it later
	var tagCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM tags`).Scan(&tagCount); err != nil {
		t.Fatalf("Failed to count tags: %v", err)
	}
	if tagCount != 2 {
		t.Errorf("Expected 2 tag rows (old orphan + new), got %d", tagCount)
	}
}

func TestSyncCardTagsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "#same content")

	if _, err := repo.SyncCardTags(context.Background(), card.ID, card.Content); err != nil {
		t.Fatalf("Failed to sync tags: %v", err)
	}
	if _, err := repo.SyncCardTags(context.Background(), card.ID, card.Content); err != nil {
		t.Fatalf("Second sync should be a no-op, got %v", err)
	}

	var linkCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM card_tags WHERE card_id = ?`, card.ID).Scan(&linkCount); err != nil {
		t.Fatalf("Failed to count links: %v", err)
	}
	if linkCount != 1 {
		t.Errorf("Expected 1 link after repeated sync, got %d", linkCount)
	}
}

func TestGetTagsByDeckExcludesTrashedCards(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	active := createTestCard(t, repo, col.ID, "#visible")
	trashed := createTestCard(t, repo, col.ID, "#hidden")
	for _, c := range []struct{ id, content string }{
		{active.ID, active.Content},
		{trashed.ID, trashed.Content},
	} {
		if _, err := repo.SyncCardTags(context.Background(), c.id, c.content); err != nil {
			t.Fatalf("Failed to sync tags: %v", err)
		}
	}
	if err := repo.SoftDeleteCard(context.Background(), trashed.ID); err != nil {
		t.Fatalf("Failed to soft-delete card: %v", err)
	}

	tags, err := repo.GetTagsByDeck(context.Background(), deck.ID)
	if err != nil {
		t.Fatalf("Failed to get deck tags: %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "visible" {
		t.Errorf("Expected only #visible, got %+v", tags)
	}
}

func TestGetTagsByDeckExcludesTrashedColumns(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "#gone")
	if _, err := repo.SyncCardTags(context.Background(), card.ID, card.Content); err != nil {
		t.Fatalf("Failed to sync tags: %v", err)
	}

	if err := repo.SoftDeleteColumn(context.Background(), col.ID); err != nil {
		t.Fatalf("Failed to soft-delete column: %v", err)
	}

	tags, err := repo.GetTagsByDeck(context.Background(), deck.ID)
	if err != nil {
		t.Fatalf("Failed to get deck tags: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("Tags of cards in a trashed column should not appear, got %+v", tags)
	}
}

func TestGetCardIDsByTag(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")

	tagged := createTestCard(t, repo, col.ID, "about #go")
	other := createTestCard(t, repo, col.ID, "about #rust")
	for _, c := range []struct{ id, content string }{
		{tagged.ID, tagged.Content},
		{other.ID, other.Content},
	} {
		if _, err := repo.SyncCardTags(context.Background(), c.id, c.content); err != nil {
			t.Fatalf("Failed to sync tags: %v", err)
		}
	}

	ids, err := repo.GetCardIDsByTag(context.Background(), deck.ID, "go")
	if err != nil {
		t.Fatalf("Failed to get cards by tag: %v", err)
	}
	if len(ids) != 1 || ids[0] != tagged.ID {
		t.Errorf("Expected only the #go card, got %v", ids)
	}

	// Tag names are case-sensitive
	ids, err = repo.GetCardIDsByTag(context.Background(), deck.ID, "GO")
	if err != nil {
		t.Fatalf("Failed to get cards by tag: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Lookup is case-sensitive, expected no cards for GO, got %v", ids)
	}
}

func TestGetTagSuggestions(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	repo := NewRepository(db)
	deck := createTestDeck(t, repo)
	col := createTestColumn(t, repo, deck.ID, "Todo")
	card := createTestCard(t, repo, col.ID, "#project #prototype #peach #banana")
	if _, err := repo.SyncCardTags(context.Background(), card.ID, card.Content); err != nil {
		t.Fatalf("Failed to sync tags: %v", err)
	}

	tags, err := repo.GetTagSuggestions(context.Background(), deck.ID, "pro", 0)
	if err != nil {
		t.Fatalf("Failed to get suggestions: %v", err)
	}
	if len(tags) != 2 || tags[0].Name != "project" || tags[1].Name != "prototype" {
		t.Errorf("Unexpected suggestions for 'pro': %+v", tags)
	}

	tags, err = repo.GetTagSuggestions(context.Background(), deck.ID, "pro", 1)
	if err != nil {
		t.Fatalf("Failed to get suggestions: %v", err)
	}
	if len(tags) != 1 {
		t.Errorf("Expected limit to cap results at 1, got %d", len(tags))
	}

	// Empty prefix suggests from all tags
	tags, err = repo.GetTagSuggestions(context.Background(), deck.ID, "", 0)
	if err != nil {
		t.Fatalf("Failed to get suggestions: %v", err)
	}
	if len(tags) != 4 {
		t.Errorf("Expected all 4 tags for empty prefix, got %d", len(tags))
	}
}
