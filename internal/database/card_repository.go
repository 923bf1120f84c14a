package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jotdeck/jotdeck/internal/models"
	"github.com/jotdeck/jotdeck/internal/types"
)

// CardRepo handles all card-related database operations, including the card
// half of the soft-delete/restore state machine.
type CardRepo struct {
	db *sql.DB
}

// CreateCard creates a card appended at the end of the column's active
// sequence. New cards start with score 0.
func (r *CardRepo) CreateCard(ctx context.Context, columnID, content string) (*models.Card, error) {
	id := types.NewID()
	now := time.Now()

	position, err := cardPositions.next(ctx, r.db, columnID)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO cards (id, column_id, content, score, position, created_at, updated_at) VALUES (?, ?, ?, 0, ?, ?, ?)`,
		id, columnID, content, position, formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, err
	}

	return &models.Card{
		ID:        id,
		ColumnID:  columnID,
		Content:   content,
		Position:  position,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// CreateCardAt creates a card at the given index, shifting later active
// cards up by one. The shift and the insert commit together.
func (r *CardRepo) CreateCardAt(ctx context.Context, columnID, content string, index int) (*models.Card, error) {
	id := types.NewID()
	now := time.Now()

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := cardPositions.shiftUpFrom(ctx, tx, columnID, index, formatTime(now)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cards (id, column_id, content, score, position, created_at, updated_at) VALUES (?, ?, ?, 0, ?, ?, ?)`,
			id, columnID, content, index, formatTime(now), formatTime(now),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.Card{
		ID:        id,
		ColumnID:  columnID,
		Content:   content,
		Position:  index,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

func scanCard(row interface{ Scan(...any) error }) (*models.Card, error) {
	card := &models.Card{}
	var createdAt, updatedAt string
	var deletedAt sql.NullString
	var deletedWithColumn int
	if err := row.Scan(&card.ID, &card.ColumnID, &card.Content, &card.Score, &card.Position,
		&createdAt, &updatedAt, &deletedAt, &deletedWithColumn); err != nil {
		return nil, err
	}

	var err error
	if card.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if card.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if card.DeletedAt, err = parseNullTime(deletedAt); err != nil {
		return nil, err
	}
	card.DeletedWithColumn = deletedWithColumn != 0
	return card, nil
}

const cardFields = `id, column_id, content, score, position, created_at, updated_at, deleted_at, deleted_with_column`

// GetCardByID retrieves a card by ID, deleted or not.
func (r *CardRepo) GetCardByID(ctx context.Context, id string) (*models.Card, error) {
	card, err := scanCard(r.db.QueryRowContext(ctx,
		`SELECT `+cardFields+` FROM cards WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("card", id)
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *CardRepo) queryCards(ctx context.Context, query string, args ...any) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// GetCardsByColumn retrieves the column's active cards in position order.
func (r *CardRepo) GetCardsByColumn(ctx context.Context, columnID string) ([]*models.Card, error) {
	return r.queryCards(ctx,
		`SELECT `+cardFields+` FROM cards WHERE column_id = ? AND deleted_at IS NULL ORDER BY position ASC`,
		columnID)
}

// GetDeletedCards retrieves the column's soft-deleted cards, most recently
// deleted first.
func (r *CardRepo) GetDeletedCards(ctx context.Context, columnID string) ([]*models.Card, error) {
	return r.queryCards(ctx,
		`SELECT `+cardFields+` FROM cards WHERE column_id = ? AND deleted_at IS NOT NULL ORDER BY deleted_at DESC`,
		columnID)
}

// GetDeletedCardsByDeck retrieves every soft-deleted card across a deck,
// most recently deleted first.
func (r *CardRepo) GetDeletedCardsByDeck(ctx context.Context, deckID string) ([]*models.Card, error) {
	return r.queryCards(ctx,
		`SELECT c.id, c.column_id, c.content, c.score, c.position, c.created_at, c.updated_at, c.deleted_at, c.deleted_with_column
		 FROM cards c
		 JOIN columns col ON c.column_id = col.id
		 WHERE col.deck_id = ? AND c.deleted_at IS NOT NULL
		 ORDER BY c.deleted_at DESC`,
		deckID)
}

// UpdateCardContent replaces the content of an active card. Callers are
// expected to follow up with SyncCardTags to keep the tag index consistent.
func (r *CardRepo) UpdateCardContent(ctx context.Context, id, content string) (*models.Card, error) {
	card, err := r.GetCardByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.Deleted() {
		return nil, invalidOp("cannot update deleted card %s", id)
	}

	now := time.Now()
	_, err = r.db.ExecContext(ctx,
		`UPDATE cards SET content = ?, updated_at = ? WHERE id = ?`,
		content, formatTime(now), id,
	)
	if err != nil {
		return nil, err
	}

	card.Content = content
	card.UpdatedAt = now.UTC()
	return card, nil
}

// UpdateCardScore adjusts an active card's score by a relative delta.
func (r *CardRepo) UpdateCardScore(ctx context.Context, id string, delta int) (*models.Card, error) {
	card, err := r.GetCardByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.Deleted() {
		return nil, invalidOp("cannot update deleted card %s", id)
	}

	now := time.Now()
	newScore := card.Score + delta
	_, err = r.db.ExecContext(ctx,
		`UPDATE cards SET score = ?, updated_at = ? WHERE id = ?`,
		newScore, formatTime(now), id,
	)
	if err != nil {
		return nil, err
	}

	card.Score = newScore
	card.UpdatedAt = now.UTC()
	return card, nil
}

// MoveCardToColumn moves an active card to the end of another column,
// compacting the source column's sequence. Both scopes update in one
// transaction.
func (r *CardRepo) MoveCardToColumn(ctx context.Context, id, newColumnID string) (*models.Card, error) {
	card, err := r.GetCardByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.Deleted() {
		return nil, invalidOp("cannot move deleted card %s", id)
	}

	now := time.Now()
	var newPosition int
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := cardPositions.shiftDownAfter(ctx, tx, card.ColumnID, card.Position, formatTime(now)); err != nil {
			return err
		}
		if newPosition, err = cardPositions.next(ctx, tx, newColumnID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE cards SET column_id = ?, position = ?, updated_at = ? WHERE id = ?`,
			newColumnID, newPosition, formatTime(now), id)
		return err
	})
	if err != nil {
		return nil, err
	}

	card.ColumnID = newColumnID
	card.Position = newPosition
	card.UpdatedAt = now.UTC()
	return card, nil
}

// MoveCard moves an active card to a new index within its column. The range
// shift and the card's own reposition commit together.
func (r *CardRepo) MoveCard(ctx context.Context, id string, newIndex int) (*models.Card, error) {
	card, err := r.GetCardByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.Deleted() {
		return nil, invalidOp("cannot move deleted card %s", id)
	}

	now := time.Now()
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := cardPositions.shiftForMove(ctx, tx, card.ColumnID, card.Position, newIndex, formatTime(now)); err != nil {
			return err
		}
		return cardPositions.setPosition(ctx, tx, id, newIndex, formatTime(now))
	})
	if err != nil {
		return nil, err
	}

	card.Position = newIndex
	card.UpdatedAt = now.UTC()
	return card, nil
}

// SoftDeleteCard soft-deletes a card directly (provenance flag stays false)
// and compacts the column's active sequence. The card keeps its position at
// deletion time so a restore can put it back in the same slot.
func (r *CardRepo) SoftDeleteCard(ctx context.Context, id string) error {
	card, err := r.GetCardByID(ctx, id)
	if err != nil {
		return err
	}
	if card.Deleted() {
		return invalidOp("card %s is already deleted", id)
	}

	now := formatTime(time.Now())
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE cards SET deleted_at = ?, updated_at = ? WHERE id = ?`,
			now, now, id); err != nil {
			return err
		}
		return cardPositions.shiftDownAfter(ctx, tx, card.ColumnID, card.Position, now)
	})
}

// RestoreCard restores an independently soft-deleted card to the exact slot
// it occupied at deletion time, re-shifting later cards forward. A
// cascade-deleted card cannot be restored directly; restore its column. The
// parent column must be active, or the restored card would sit inside a
// deleted column and block the column's eventual purge.
func (r *CardRepo) RestoreCard(ctx context.Context, id string) (*models.Card, error) {
	card, err := r.GetCardByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !card.Deleted() {
		return nil, invalidOp("card %s is not deleted", id)
	}
	if card.DeletedWithColumn {
		return nil, invalidOp("card %s was deleted with its column; restore the column instead", id)
	}

	var columnDeletedAt sql.NullString
	if err := r.db.QueryRowContext(ctx,
		`SELECT deleted_at FROM columns WHERE id = ?`, card.ColumnID).Scan(&columnDeletedAt); err != nil {
		return nil, err
	}
	if columnDeletedAt.Valid {
		return nil, invalidOp("cannot restore card %s: column %s is deleted; restore the column first", id, card.ColumnID)
	}

	now := time.Now()
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := cardPositions.shiftUpFrom(ctx, tx, card.ColumnID, card.Position, formatTime(now)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE cards SET deleted_at = NULL, updated_at = ? WHERE id = ?`,
			formatTime(now), id)
		return err
	})
	if err != nil {
		return nil, err
	}

	card.DeletedAt = nil
	card.UpdatedAt = now.UTC()
	return card, nil
}
