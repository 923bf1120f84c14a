package card

import (
	"context"
	"fmt"

	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/models"
)

// Service defines all card-related business operations. Content-affecting
// writes keep the tag index in sync as a side effect.
type Service interface {
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	GetCardByID(ctx context.Context, cardID string) (*models.Card, error)
	ListCardsByColumn(ctx context.Context, columnID string) ([]*models.Card, error)
	ListDeletedCards(ctx context.Context, columnID string) ([]*models.Card, error)
	ListDeletedCardsByDeck(ctx context.Context, deckID string) ([]*models.Card, error)
	UpdateCardContent(ctx context.Context, cardID, content string) (*models.Card, error)
	UpdateCardScore(ctx context.Context, cardID string, delta int) (*models.Card, error)
	MoveCardToColumn(ctx context.Context, cardID, columnID string) (*models.Card, error)
	MoveCard(ctx context.Context, cardID string, index int) (*models.Card, error)
	SoftDeleteCard(ctx context.Context, cardID string) error
	RestoreCard(ctx context.Context, cardID string) (*models.Card, error)
}

// CreateCardRequest encapsulates all data needed to create a card.
// A nil Index appends to the end of the column.
type CreateCardRequest struct {
	ColumnID string
	Content  string
	Index    *int
}

type service struct {
	repo database.DataStore
}

// NewService creates a new card service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// activeColumn fetches a column and rejects deleted ones, so cards cannot be
// created in or moved into a soft-deleted column.
func (s *service) activeColumn(ctx context.Context, columnID string) (*models.Column, error) {
	col, err := s.repo.GetColumnByID(ctx, columnID)
	if err != nil {
		return nil, err
	}
	if col.Deleted() {
		return nil, fmt.Errorf("column %s: %w", columnID, ErrColumnDeleted)
	}
	return col, nil
}

func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	if req.ColumnID == "" {
		return nil, ErrInvalidColumnID
	}
	if req.Index != nil && *req.Index < 0 {
		return nil, ErrInvalidIndex
	}
	if _, err := s.activeColumn(ctx, req.ColumnID); err != nil {
		return nil, err
	}

	var card *models.Card
	var err error
	if req.Index != nil {
		card, err = s.repo.CreateCardAt(ctx, req.ColumnID, req.Content, *req.Index)
	} else {
		card, err = s.repo.CreateCard(ctx, req.ColumnID, req.Content)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	if _, err := s.repo.SyncCardTags(ctx, card.ID, card.Content); err != nil {
		return nil, fmt.Errorf("failed to sync tags: %w", err)
	}
	return card, nil
}

func (s *service) GetCardByID(ctx context.Context, cardID string) (*models.Card, error) {
	if cardID == "" {
		return nil, ErrInvalidCardID
	}
	return s.repo.GetCardByID(ctx, cardID)
}

func (s *service) ListCardsByColumn(ctx context.Context, columnID string) ([]*models.Card, error) {
	if columnID == "" {
		return nil, ErrInvalidColumnID
	}
	return s.repo.GetCardsByColumn(ctx, columnID)
}

func (s *service) ListDeletedCards(ctx context.Context, columnID string) ([]*models.Card, error) {
	if columnID == "" {
		return nil, ErrInvalidColumnID
	}
	return s.repo.GetDeletedCards(ctx, columnID)
}

func (s *service) ListDeletedCardsByDeck(ctx context.Context, deckID string) ([]*models.Card, error) {
	if deckID == "" {
		return nil, ErrInvalidDeckID
	}
	return s.repo.GetDeletedCardsByDeck(ctx, deckID)
}

func (s *service) UpdateCardContent(ctx context.Context, cardID, content string) (*models.Card, error) {
	if cardID == "" {
		return nil, ErrInvalidCardID
	}

	card, err := s.repo.UpdateCardContent(ctx, cardID, content)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.SyncCardTags(ctx, card.ID, card.Content); err != nil {
		return nil, fmt.Errorf("failed to sync tags: %w", err)
	}
	return card, nil
}

func (s *service) UpdateCardScore(ctx context.Context, cardID string, delta int) (*models.Card, error) {
	if cardID == "" {
		return nil, ErrInvalidCardID
	}
	return s.repo.UpdateCardScore(ctx, cardID, delta)
}

func (s *service) MoveCardToColumn(ctx context.Context, cardID, columnID string) (*models.Card, error) {
	if cardID == "" {
		return nil, ErrInvalidCardID
	}
	if columnID == "" {
		return nil, ErrInvalidColumnID
	}
	if _, err := s.activeColumn(ctx, columnID); err != nil {
		return nil, err
	}
	return s.repo.MoveCardToColumn(ctx, cardID, columnID)
}

func (s *service) MoveCard(ctx context.Context, cardID string, index int) (*models.Card, error) {
	if cardID == "" {
		return nil, ErrInvalidCardID
	}
	if index < 0 {
		return nil, ErrInvalidIndex
	}
	return s.repo.MoveCard(ctx, cardID, index)
}

func (s *service) SoftDeleteCard(ctx context.Context, cardID string) error {
	if cardID == "" {
		return ErrInvalidCardID
	}
	return s.repo.SoftDeleteCard(ctx, cardID)
}

func (s *service) RestoreCard(ctx context.Context, cardID string) (*models.Card, error) {
	if cardID == "" {
		return nil, ErrInvalidCardID
	}
	return s.repo.RestoreCard(ctx, cardID)
}
