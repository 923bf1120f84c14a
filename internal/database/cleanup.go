package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jotdeck/jotdeck/internal/models"
)

// DefaultRetentionDays is how long soft-deleted rows survive before the
// cleanup batch may reclaim them.
const DefaultRetentionDays = 30

// CleanupRepo physically purges soft-deleted rows past the retention
// threshold and reclaims orphaned tags. This is the only place orphan tags
// are removed; every other path leaves tag rows behind so mutations never
// pay for an orphan scan.
type CleanupRepo struct {
	db *sql.DB
}

// RunCleanup purges, in one transaction: tag links of cards soft-deleted
// before threshold, then those cards, then columns soft-deleted before
// threshold, then every tag with zero remaining links. Returns per-class
// purge counts.
func (r *CleanupRepo) RunCleanup(ctx context.Context, threshold time.Time) (models.CleanupResult, error) {
	cutoff := formatTime(threshold)

	var result models.CleanupResult
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM card_tags WHERE card_id IN (
				SELECT id FROM cards WHERE deleted_at IS NOT NULL AND deleted_at < ?
			)`, cutoff); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`DELETE FROM cards WHERE deleted_at IS NOT NULL AND deleted_at < ?`, cutoff)
		if err != nil {
			return err
		}
		cards, err := res.RowsAffected()
		if err != nil {
			return err
		}

		res, err = tx.ExecContext(ctx,
			`DELETE FROM columns WHERE deleted_at IS NOT NULL AND deleted_at < ?`, cutoff)
		if err != nil {
			return err
		}
		columns, err := res.RowsAffected()
		if err != nil {
			return err
		}

		res, err = tx.ExecContext(ctx,
			`DELETE FROM tags WHERE id NOT IN (SELECT DISTINCT tag_id FROM card_tags)`)
		if err != nil {
			return err
		}
		tags, err := res.RowsAffected()
		if err != nil {
			return err
		}

		result = models.CleanupResult{
			Cards:      int(cards),
			Columns:    int(columns),
			OrphanTags: int(tags),
		}
		return nil
	})
	if err != nil {
		return models.CleanupResult{}, err
	}
	return result, nil
}

// RunCleanupWithRetention purges everything soft-deleted more than the given
// number of days ago.
func (r *CleanupRepo) RunCleanupWithRetention(ctx context.Context, retentionDays int) (models.CleanupResult, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	threshold := time.Now().AddDate(0, 0, -retentionDays)
	return r.RunCleanup(ctx, threshold)
}
