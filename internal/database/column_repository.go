package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jotdeck/jotdeck/internal/models"
	"github.com/jotdeck/jotdeck/internal/types"
)

// ColumnRepo handles all column-related database operations, including the
// column half of the soft-delete/restore state machine.
type ColumnRepo struct {
	db *sql.DB
}

// nextColumnName auto-generates the next name in the a-col, b-col, ...,
// z-col, aa-col, ... sequence (bijective base-26 over the column count).
// The count deliberately includes soft-deleted columns, so repeatedly
// creating and deleting columns skips names rather than reusing them.
func nextColumnName(ctx context.Context, q execer, deckID string) (string, error) {
	var count int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM columns WHERE deck_id = ?`, deckID).Scan(&count)
	if err != nil {
		return "", err
	}

	n := count + 1
	var letters []byte
	for n > 0 {
		n--
		letters = append([]byte{byte('a' + n%26)}, letters...)
		n /= 26
	}
	return string(letters) + "-col", nil
}

// CreateColumn creates a column appended at the end of the deck's active
// sequence. An empty name is auto-generated.
func (r *ColumnRepo) CreateColumn(ctx context.Context, deckID, name string) (*models.Column, error) {
	id := types.NewID()
	now := time.Now()

	position, err := columnPositions.next(ctx, r.db, deckID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		if name, err = nextColumnName(ctx, r.db, deckID); err != nil {
			return nil, err
		}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO columns (id, deck_id, name, position, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, deckID, name, position, formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, err
	}

	return &models.Column{
		ID:        id,
		DeckID:    deckID,
		Name:      name,
		Position:  position,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// CreateColumnAt creates a column at the given index, shifting later active
// columns up by one. The shift and the insert commit together.
func (r *ColumnRepo) CreateColumnAt(ctx context.Context, deckID, name string, index int) (*models.Column, error) {
	id := types.NewID()
	now := time.Now()

	if name == "" {
		var err error
		if name, err = nextColumnName(ctx, r.db, deckID); err != nil {
			return nil, err
		}
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := columnPositions.shiftUpFrom(ctx, tx, deckID, index, formatTime(now)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO columns (id, deck_id, name, position, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			id, deckID, name, index, formatTime(now), formatTime(now),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.Column{
		ID:        id,
		DeckID:    deckID,
		Name:      name,
		Position:  index,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

func scanColumn(row interface{ Scan(...any) error }) (*models.Column, error) {
	col := &models.Column{}
	var createdAt, updatedAt string
	var deletedAt sql.NullString
	if err := row.Scan(&col.ID, &col.DeckID, &col.Name, &col.Position, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	var err error
	if col.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if col.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if col.DeletedAt, err = parseNullTime(deletedAt); err != nil {
		return nil, err
	}
	return col, nil
}

const columnFields = `id, deck_id, name, position, created_at, updated_at, deleted_at`

// GetColumnByID retrieves a column by ID, deleted or not.
func (r *ColumnRepo) GetColumnByID(ctx context.Context, id string) (*models.Column, error) {
	col, err := scanColumn(r.db.QueryRowContext(ctx,
		`SELECT `+columnFields+` FROM columns WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("column", id)
	}
	if err != nil {
		return nil, err
	}
	return col, nil
}

func (r *ColumnRepo) queryColumns(ctx context.Context, query string, args ...any) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		col, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// GetColumnsByDeck retrieves the deck's active columns in position order.
func (r *ColumnRepo) GetColumnsByDeck(ctx context.Context, deckID string) ([]*models.Column, error) {
	return r.queryColumns(ctx,
		`SELECT `+columnFields+` FROM columns WHERE deck_id = ? AND deleted_at IS NULL ORDER BY position ASC`,
		deckID)
}

// GetDeletedColumns retrieves the deck's soft-deleted columns, most recently
// deleted first. Used for trash views.
func (r *ColumnRepo) GetDeletedColumns(ctx context.Context, deckID string) ([]*models.Column, error) {
	return r.queryColumns(ctx,
		`SELECT `+columnFields+` FROM columns WHERE deck_id = ? AND deleted_at IS NOT NULL ORDER BY deleted_at DESC`,
		deckID)
}

// RenameColumn updates the name of an active column.
func (r *ColumnRepo) RenameColumn(ctx context.Context, id, name string) (*models.Column, error) {
	col, err := r.GetColumnByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if col.Deleted() {
		return nil, invalidOp("cannot rename deleted column %s", id)
	}

	now := time.Now()
	_, err = r.db.ExecContext(ctx,
		`UPDATE columns SET name = ?, updated_at = ? WHERE id = ?`,
		name, formatTime(now), id,
	)
	if err != nil {
		return nil, err
	}

	col.Name = name
	col.UpdatedAt = now.UTC()
	return col, nil
}

// MoveColumn moves an active column to a new index within its deck. The
// range shift and the column's own reposition commit together; a partial
// write would leave the deck with a duplicate or a gap.
func (r *ColumnRepo) MoveColumn(ctx context.Context, id string, newIndex int) (*models.Column, error) {
	col, err := r.GetColumnByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if col.Deleted() {
		return nil, invalidOp("cannot move deleted column %s", id)
	}

	now := time.Now()
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := columnPositions.shiftForMove(ctx, tx, col.DeckID, col.Position, newIndex, formatTime(now)); err != nil {
			return err
		}
		return columnPositions.setPosition(ctx, tx, id, newIndex, formatTime(now))
	})
	if err != nil {
		return nil, err
	}

	col.Position = newIndex
	col.UpdatedAt = now.UTC()
	return col, nil
}

// SoftDeleteColumn soft-deletes a column and cascades to its active cards,
// marking them deleted_with_column so only the column's restore can bring
// them back. Card positions stay frozen (they are scoped to the column);
// the deck's column sequence is compacted. Cascade and compaction commit
// together.
func (r *ColumnRepo) SoftDeleteColumn(ctx context.Context, id string) error {
	col, err := r.GetColumnByID(ctx, id)
	if err != nil {
		return err
	}
	if col.Deleted() {
		return invalidOp("column %s is already deleted", id)
	}

	now := formatTime(time.Now())
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE cards SET deleted_at = ?, deleted_with_column = 1, updated_at = ? WHERE column_id = ? AND deleted_at IS NULL`,
			now, now, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE columns SET deleted_at = ?, updated_at = ? WHERE id = ?`,
			now, now, id); err != nil {
			return err
		}
		return columnPositions.shiftDownAfter(ctx, tx, col.DeckID, col.Position, now)
	})
}

// RestoreColumn restores a soft-deleted column to the exact index it held at
// deletion time, together with every card its deletion cascaded to. Cards
// that were independently deleted before the column stay deleted.
func (r *ColumnRepo) RestoreColumn(ctx context.Context, id string) (*models.Column, error) {
	col, err := r.GetColumnByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !col.Deleted() {
		return nil, invalidOp("column %s is not deleted", id)
	}

	now := time.Now()
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := columnPositions.shiftUpFrom(ctx, tx, col.DeckID, col.Position, formatTime(now)); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE cards SET deleted_at = NULL, deleted_with_column = 0, updated_at = ? WHERE column_id = ? AND deleted_with_column = 1`,
			formatTime(now), id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE columns SET deleted_at = NULL, updated_at = ? WHERE id = ?`,
			formatTime(now), id)
		return err
	})
	if err != nil {
		return nil, err
	}

	col.DeletedAt = nil
	col.UpdatedAt = now.UTC()
	return col, nil
}
