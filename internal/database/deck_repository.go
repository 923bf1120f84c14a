package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jotdeck/jotdeck/internal/models"
	"github.com/jotdeck/jotdeck/internal/types"
)

// DeckRepo handles all deck-related database operations.
type DeckRepo struct {
	db *sql.DB
}

// CreateDeck creates a new deck. Decks carry no position and no soft-delete.
func (r *DeckRepo) CreateDeck(ctx context.Context, name string, sortOrder models.SortOrder) (*models.Deck, error) {
	id := types.NewID()
	now := time.Now()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decks (id, name, sort_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, name, string(sortOrder), formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, err
	}

	return &models.Deck{
		ID:        id,
		Name:      name,
		SortOrder: sortOrder,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

func scanDeck(row interface{ Scan(...any) error }) (*models.Deck, error) {
	deck := &models.Deck{}
	var sortOrder, createdAt, updatedAt string
	if err := row.Scan(&deck.ID, &deck.Name, &sortOrder, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	deck.SortOrder = models.ParseSortOrder(sortOrder)

	var err error
	if deck.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if deck.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return deck, nil
}

// GetDeckByID retrieves a deck by its ID.
func (r *DeckRepo) GetDeckByID(ctx context.Context, id string) (*models.Deck, error) {
	deck, err := scanDeck(r.db.QueryRowContext(ctx,
		`SELECT id, name, sort_order, created_at, updated_at FROM decks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("deck", id)
	}
	if err != nil {
		return nil, err
	}
	return deck, nil
}

// GetAllDecks retrieves every deck, newest first.
func (r *DeckRepo) GetAllDecks(ctx context.Context) ([]*models.Deck, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, sort_order, created_at, updated_at FROM decks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []*models.Deck
	for rows.Next() {
		deck, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		decks = append(decks, deck)
	}
	return decks, rows.Err()
}

// UpdateDeck updates a deck's name and/or sort order. Nil fields are left
// unchanged.
func (r *DeckRepo) UpdateDeck(ctx context.Context, id string, name *string, sortOrder *models.SortOrder) (*models.Deck, error) {
	deck, err := r.GetDeckByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if name != nil {
		deck.Name = *name
	}
	if sortOrder != nil {
		deck.SortOrder = *sortOrder
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE decks SET name = ?, sort_order = ?, updated_at = ? WHERE id = ?`,
		deck.Name, string(deck.SortOrder), formatTime(now), id,
	)
	if err != nil {
		return nil, err
	}

	deck.UpdatedAt = now.UTC()
	return deck, nil
}

// DeleteDeck physically deletes a deck with all its columns and cards,
// deleted or not. This is immediate and irreversible; tag rows are left
// behind for the cleanup batch's global orphan scan.
func (r *DeckRepo) DeleteDeck(ctx context.Context, id string) error {
	if _, err := r.GetDeckByID(ctx, id); err != nil {
		return err
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM card_tags WHERE card_id IN (
				SELECT id FROM cards WHERE column_id IN (SELECT id FROM columns WHERE deck_id = ?)
			)`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM cards WHERE column_id IN (SELECT id FROM columns WHERE deck_id = ?)`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM columns WHERE deck_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
		return err
	})
}
