package app

import (
	"github.com/jotdeck/jotdeck/internal/config"
	"github.com/jotdeck/jotdeck/internal/database"
	cardservice "github.com/jotdeck/jotdeck/internal/services/card"
	cleanupservice "github.com/jotdeck/jotdeck/internal/services/cleanup"
	columnservice "github.com/jotdeck/jotdeck/internal/services/column"
	deckservice "github.com/jotdeck/jotdeck/internal/services/deck"
	tagservice "github.com/jotdeck/jotdeck/internal/services/tag"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	DeckService    deckservice.Service
	ColumnService  columnservice.Service
	CardService    cardservice.Service
	TagService     tagservice.Service
	CleanupService cleanupservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, cfg *config.Config) *App {
	return &App{
		repo:           repo,
		DeckService:    deckservice.NewService(repo),
		ColumnService:  columnservice.NewService(repo),
		CardService:    cardservice.NewService(repo),
		TagService:     tagservice.NewService(repo, cfg.Tags.SuggestLimit),
		CleanupService: cleanupservice.NewService(repo, cfg.Cleanup.RetentionDays),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// Currently a no-op, but provided for future resource management needs.
func (a *App) Close() error {
	return nil
}
