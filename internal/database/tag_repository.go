package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jotdeck/jotdeck/internal/hashtag"
	"github.com/jotdeck/jotdeck/internal/models"
	"github.com/jotdeck/jotdeck/internal/types"
)

// DefaultSuggestionLimit caps prefix-search tag suggestions.
const DefaultSuggestionLimit = 10

// TagRepo keeps the derived card-tag index consistent with card content and
// serves the read-side tag queries.
type TagRepo struct {
	db *sql.DB
}

// getOrCreateTag finds a tag by exact, case-sensitive name, creating it with
// a fresh ID if absent.
func getOrCreateTag(ctx context.Context, q execer, name string) (*models.Tag, error) {
	tag := &models.Tag{}
	err := q.QueryRowContext(ctx,
		`SELECT id, name FROM tags WHERE name = ?`, name).Scan(&tag.ID, &tag.Name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	id := types.NewID()
	if _, err := q.ExecContext(ctx,
		`INSERT INTO tags (id, name) VALUES (?, ?)`, id, name); err != nil {
		return nil, err
	}
	return &models.Tag{ID: id, Name: name}, nil
}

func getTagsByCard(ctx context.Context, q execer, cardID string) ([]*models.Tag, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT t.id, t.name FROM tags t JOIN card_tags ct ON t.id = ct.tag_id WHERE ct.card_id = ? ORDER BY t.name`,
		cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		tag := &models.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// GetTagsByCard retrieves the tags currently associated with a card.
func (r *TagRepo) GetTagsByCard(ctx context.Context, cardID string) ([]*models.Tag, error) {
	return getTagsByCard(ctx, r.db, cardID)
}

// SyncCardTags reconciles a card's tag associations against the hashtags in
// content. Stale associations are dropped (the tag rows stay behind for the
// cleanup batch), missing tags are created, missing associations added.
// Idempotent: syncing unchanged content is a no-op. The whole reconciliation
// commits as one transaction.
func (r *TagRepo) SyncCardTags(ctx context.Context, cardID, content string) ([]*models.Tag, error) {
	extracted := hashtag.Extract(content)

	var result []*models.Tag
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := getTagsByCard(ctx, tx, cardID)
		if err != nil {
			return err
		}

		currentNames := make(map[string]bool, len(current))
		for _, tag := range current {
			currentNames[tag.Name] = true
		}
		extractedNames := make(map[string]bool, len(extracted))
		for _, name := range extracted {
			extractedNames[name] = true
		}

		// Drop associations whose token no longer appears in the content.
		for _, tag := range current {
			if !extractedNames[tag.Name] {
				if _, err := tx.ExecContext(ctx,
					`DELETE FROM card_tags WHERE card_id = ? AND tag_id = ?`,
					cardID, tag.ID); err != nil {
					return err
				}
			}
		}

		seen := make(map[string]bool, len(extracted))
		for _, name := range extracted {
			tag, err := getOrCreateTag(ctx, tx, name)
			if err != nil {
				return err
			}
			if !currentNames[name] {
				if _, err := tx.ExecContext(ctx,
					`INSERT OR IGNORE INTO card_tags (card_id, tag_id) VALUES (?, ?)`,
					cardID, tag.ID); err != nil {
					return err
				}
			}
			if !seen[name] {
				seen[name] = true
				result = append(result, tag)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetTagsByDeck retrieves the tags in use anywhere in a deck, counting only
// active cards in active columns.
func (r *TagRepo) GetTagsByDeck(ctx context.Context, deckID string) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT t.id, t.name
		 FROM tags t
		 JOIN card_tags ct ON t.id = ct.tag_id
		 JOIN cards c ON ct.card_id = c.id
		 JOIN columns col ON c.column_id = col.id
		 WHERE col.deck_id = ? AND c.deleted_at IS NULL AND col.deleted_at IS NULL
		 ORDER BY t.name`,
		deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		tag := &models.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// GetCardIDsByTag retrieves the IDs of active cards in a deck carrying the
// exact tag name.
func (r *TagRepo) GetCardIDsByTag(ctx context.Context, deckID, tagName string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id
		 FROM cards c
		 JOIN card_tags ct ON c.id = ct.card_id
		 JOIN tags t ON ct.tag_id = t.id
		 JOIN columns col ON c.column_id = col.id
		 WHERE col.deck_id = ? AND t.name = ? AND c.deleted_at IS NULL AND col.deleted_at IS NULL`,
		deckID, tagName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cardIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		cardIDs = append(cardIDs, id)
	}
	return cardIDs, rows.Err()
}

// GetTagSuggestions retrieves up to limit tags in the deck whose names start
// with prefix, for completion UIs. A non-positive limit falls back to the
// default.
func (r *TagRepo) GetTagSuggestions(ctx context.Context, deckID, prefix string, limit int) ([]*models.Tag, error) {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT t.id, t.name
		 FROM tags t
		 JOIN card_tags ct ON t.id = ct.tag_id
		 JOIN cards c ON ct.card_id = c.id
		 JOIN columns col ON c.column_id = col.id
		 WHERE col.deck_id = ? AND t.name LIKE ? AND c.deleted_at IS NULL AND col.deleted_at IS NULL
		 ORDER BY t.name
		 LIMIT ?`,
		deckID, prefix+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		tag := &models.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
