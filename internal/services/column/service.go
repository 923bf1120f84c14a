package column

import (
	"context"
	"fmt"

	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/models"
)

// Service defines all column-related business operations
type Service interface {
	CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error)
	GetColumnByID(ctx context.Context, columnID string) (*models.Column, error)
	ListColumnsByDeck(ctx context.Context, deckID string) ([]*models.Column, error)
	ListDeletedColumns(ctx context.Context, deckID string) ([]*models.Column, error)
	RenameColumn(ctx context.Context, columnID, name string) (*models.Column, error)
	MoveColumn(ctx context.Context, columnID string, index int) (*models.Column, error)
	SoftDeleteColumn(ctx context.Context, columnID string) error
	RestoreColumn(ctx context.Context, columnID string) (*models.Column, error)
}

// CreateColumnRequest encapsulates all data needed to create a column.
// An empty Name is auto-generated (a-col, b-col, ...). A nil Index appends
// to the end of the deck.
type CreateColumnRequest struct {
	DeckID string
	Name   string
	Index  *int
}

type service struct {
	repo database.DataStore
}

// NewService creates a new column service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error) {
	if req.DeckID == "" {
		return nil, ErrInvalidDeckID
	}
	if len(req.Name) > 255 {
		return nil, ErrNameTooLong
	}
	if req.Index != nil && *req.Index < 0 {
		return nil, ErrInvalidIndex
	}

	// Validate the deck exists up front for a clean NotFound instead of a
	// foreign key failure.
	if _, err := s.repo.GetDeckByID(ctx, req.DeckID); err != nil {
		return nil, err
	}

	var col *models.Column
	var err error
	if req.Index != nil {
		col, err = s.repo.CreateColumnAt(ctx, req.DeckID, req.Name, *req.Index)
	} else {
		col, err = s.repo.CreateColumn(ctx, req.DeckID, req.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	return col, nil
}

func (s *service) GetColumnByID(ctx context.Context, columnID string) (*models.Column, error) {
	if columnID == "" {
		return nil, ErrInvalidColumnID
	}
	return s.repo.GetColumnByID(ctx, columnID)
}

func (s *service) ListColumnsByDeck(ctx context.Context, deckID string) ([]*models.Column, error) {
	if deckID == "" {
		return nil, ErrInvalidDeckID
	}
	return s.repo.GetColumnsByDeck(ctx, deckID)
}

func (s *service) ListDeletedColumns(ctx context.Context, deckID string) ([]*models.Column, error) {
	if deckID == "" {
		return nil, ErrInvalidDeckID
	}
	return s.repo.GetDeletedColumns(ctx, deckID)
}

func (s *service) RenameColumn(ctx context.Context, columnID, name string) (*models.Column, error) {
	if columnID == "" {
		return nil, ErrInvalidColumnID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > 255 {
		return nil, ErrNameTooLong
	}
	return s.repo.RenameColumn(ctx, columnID, name)
}

func (s *service) MoveColumn(ctx context.Context, columnID string, index int) (*models.Column, error) {
	if columnID == "" {
		return nil, ErrInvalidColumnID
	}
	if index < 0 {
		return nil, ErrInvalidIndex
	}
	return s.repo.MoveColumn(ctx, columnID, index)
}

func (s *service) SoftDeleteColumn(ctx context.Context, columnID string) error {
	if columnID == "" {
		return ErrInvalidColumnID
	}
	return s.repo.SoftDeleteColumn(ctx, columnID)
}

func (s *service) RestoreColumn(ctx context.Context, columnID string) (*models.Column, error) {
	if columnID == "" {
		return nil, ErrInvalidColumnID
	}
	return s.repo.RestoreColumn(ctx, columnID)
}
