package deck

import (
	"context"
	"fmt"

	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/models"
)

// Service defines all deck-related business operations
type Service interface {
	CreateDeck(ctx context.Context, req CreateDeckRequest) (*models.Deck, error)
	GetDeckByID(ctx context.Context, deckID string) (*models.Deck, error)
	ListDecks(ctx context.Context) ([]*models.Deck, error)
	UpdateDeck(ctx context.Context, req UpdateDeckRequest) (*models.Deck, error)
	DeleteDeck(ctx context.Context, deckID string) error
}

// CreateDeckRequest encapsulates all data needed to create a deck
type CreateDeckRequest struct {
	Name      string
	SortOrder models.SortOrder // empty means the default (created_desc)
}

// UpdateDeckRequest encapsulates all data needed to update a deck
// Fields with pointers are optional - nil means don't update
type UpdateDeckRequest struct {
	DeckID    string
	Name      *string
	SortOrder *models.SortOrder
}

type service struct {
	repo database.DataStore
}

// NewService creates a new deck service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) CreateDeck(ctx context.Context, req CreateDeckRequest) (*models.Deck, error) {
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	if len(req.Name) > 255 {
		return nil, ErrNameTooLong
	}
	sortOrder := req.SortOrder
	if sortOrder == "" {
		sortOrder = models.DefaultSortOrder
	}

	deck, err := s.repo.CreateDeck(ctx, req.Name, sortOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}
	return deck, nil
}

func (s *service) GetDeckByID(ctx context.Context, deckID string) (*models.Deck, error) {
	if deckID == "" {
		return nil, ErrInvalidDeckID
	}
	return s.repo.GetDeckByID(ctx, deckID)
}

func (s *service) ListDecks(ctx context.Context) ([]*models.Deck, error) {
	return s.repo.GetAllDecks(ctx)
}

func (s *service) UpdateDeck(ctx context.Context, req UpdateDeckRequest) (*models.Deck, error) {
	if req.DeckID == "" {
		return nil, ErrInvalidDeckID
	}
	if req.Name != nil && *req.Name == "" {
		return nil, ErrEmptyName
	}
	if req.Name != nil && len(*req.Name) > 255 {
		return nil, ErrNameTooLong
	}

	deck, err := s.repo.UpdateDeck(ctx, req.DeckID, req.Name, req.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to update deck: %w", err)
	}
	return deck, nil
}

// DeleteDeck physically deletes a deck and everything under it. There is no
// undo for deck deletion.
func (s *service) DeleteDeck(ctx context.Context, deckID string) error {
	if deckID == "" {
		return ErrInvalidDeckID
	}
	if err := s.repo.DeleteDeck(ctx, deckID); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	return nil
}
