package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/models"
)

// Service runs the retention cleanup batch.
type Service interface {
	Run(ctx context.Context) (models.CleanupResult, error)
	RunWithThreshold(ctx context.Context, threshold time.Time) (models.CleanupResult, error)
}

type service struct {
	repo          database.DataStore
	retentionDays int
}

// NewService creates a new cleanup service. retentionDays of zero means the
// repository default (30 days).
func NewService(repo database.DataStore, retentionDays int) Service {
	return &service{repo: repo, retentionDays: retentionDays}
}

// Run purges everything soft-deleted longer ago than the retention window,
// plus any tags left without associations.
func (s *service) Run(ctx context.Context) (models.CleanupResult, error) {
	result, err := s.repo.RunCleanupWithRetention(ctx, s.retentionDays)
	if err != nil {
		return models.CleanupResult{}, err
	}
	slog.Info("cleanup finished",
		"cards", result.Cards,
		"columns", result.Columns,
		"orphan_tags", result.OrphanTags,
	)
	return result, nil
}

// RunWithThreshold purges everything soft-deleted before an explicit cutoff.
func (s *service) RunWithThreshold(ctx context.Context, threshold time.Time) (models.CleanupResult, error) {
	return s.repo.RunCleanup(ctx, threshold)
}
