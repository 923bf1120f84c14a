package database

import (
	"context"
	"database/sql"
	"fmt"
)

// positionScope is the position index engine for one parent/child sibling
// scope. Active siblings of a parent always hold positions {0..n-1} with no
// gaps or duplicates; deleted rows keep the position they held at deletion
// time and are excluded from every shift.
//
// The engine is instantiated twice: columns ordered within a deck, and cards
// ordered within a column. Callers are responsible for wrapping multi-step
// sequences (shift + insert, shift + delete) in a transaction.
type positionScope struct {
	table     string // row set holding the position column
	parentCol string // foreign key column naming the parent scope
}

var (
	columnPositions = positionScope{table: "columns", parentCol: "deck_id"}
	cardPositions   = positionScope{table: "cards", parentCol: "column_id"}
)

// next returns the append position: one past the highest active position,
// or 0 for an empty scope.
func (s positionScope) next(ctx context.Context, q execer, parentID string) (int, error) {
	query := fmt.Sprintf(
		`SELECT MAX(position) FROM %s WHERE %s = ? AND deleted_at IS NULL`,
		s.table, s.parentCol,
	)
	var maxPos sql.NullInt64
	if err := q.QueryRowContext(ctx, query, parentID).Scan(&maxPos); err != nil {
		return 0, err
	}
	if !maxPos.Valid {
		return 0, nil
	}
	return int(maxPos.Int64) + 1, nil
}

// shiftUpFrom opens a slot at index by shifting every active sibling at or
// after it up by one. Used before an insert and before a restore.
func (s positionScope) shiftUpFrom(ctx context.Context, q execer, parentID string, index int, now string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET position = position + 1, updated_at = ? WHERE %s = ? AND position >= ? AND deleted_at IS NULL`,
		s.table, s.parentCol,
	)
	_, err := q.ExecContext(ctx, query, now, parentID, index)
	return err
}

// shiftDownAfter closes the slot left behind at index by shifting every
// active sibling after it down by one. Used after a delete and after a row
// leaves the scope.
func (s positionScope) shiftDownAfter(ctx context.Context, q execer, parentID string, index int, now string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET position = position - 1, updated_at = ? WHERE %s = ? AND position > ? AND deleted_at IS NULL`,
		s.table, s.parentCol,
	)
	_, err := q.ExecContext(ctx, query, now, parentID, index)
	return err
}

// shiftForMove shifts the range of active siblings displaced by moving a row
// from oldPos to newPos. The moved row itself is repositioned separately with
// setPosition; both statements must share one transaction or the scope is
// left with a duplicate or a gap.
func (s positionScope) shiftForMove(ctx context.Context, q execer, parentID string, oldPos, newPos int, now string) error {
	if newPos > oldPos {
		query := fmt.Sprintf(
			`UPDATE %s SET position = position - 1, updated_at = ? WHERE %s = ? AND position > ? AND position <= ? AND deleted_at IS NULL`,
			s.table, s.parentCol,
		)
		_, err := q.ExecContext(ctx, query, now, parentID, oldPos, newPos)
		return err
	}
	if newPos < oldPos {
		query := fmt.Sprintf(
			`UPDATE %s SET position = position + 1, updated_at = ? WHERE %s = ? AND position >= ? AND position < ? AND deleted_at IS NULL`,
			s.table, s.parentCol,
		)
		_, err := q.ExecContext(ctx, query, now, parentID, newPos, oldPos)
		return err
	}
	return nil
}

// setPosition writes the moved row's new position.
func (s positionScope) setPosition(ctx context.Context, q execer, id string, position int, now string) error {
	query := fmt.Sprintf(`UPDATE %s SET position = ?, updated_at = ? WHERE id = ?`, s.table)
	_, err := q.ExecContext(ctx, query, position, now, id)
	return err
}
