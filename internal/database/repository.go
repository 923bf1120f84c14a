package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*DeckRepo
	*ColumnRepo
	*CardRepo
	*TagRepo
	*CleanupRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DeckRepo:    &DeckRepo{db: db},
		ColumnRepo:  &ColumnRepo{db: db},
		CardRepo:    &CardRepo{db: db},
		TagRepo:     &TagRepo{db: db},
		CleanupRepo: &CleanupRepo{db: db},
	}
}
