package tag

import (
	"context"

	"github.com/jotdeck/jotdeck/internal/database"
	"github.com/jotdeck/jotdeck/internal/models"
)

// Service defines the read side of the tag index plus explicit resync.
type Service interface {
	ListTagsByDeck(ctx context.Context, deckID string) ([]*models.Tag, error)
	ListCardIDsByTag(ctx context.Context, deckID, tagName string) ([]string, error)
	SuggestTags(ctx context.Context, deckID, prefix string) ([]*models.Tag, error)
	SyncCardTags(ctx context.Context, cardID, content string) ([]*models.Tag, error)
}

type service struct {
	repo         database.DataStore
	suggestLimit int
}

// NewService creates a new tag service. suggestLimit caps prefix-search
// results; zero means the repository default.
func NewService(repo database.DataStore, suggestLimit int) Service {
	return &service{repo: repo, suggestLimit: suggestLimit}
}

func (s *service) ListTagsByDeck(ctx context.Context, deckID string) ([]*models.Tag, error) {
	if deckID == "" {
		return nil, ErrInvalidDeckID
	}
	return s.repo.GetTagsByDeck(ctx, deckID)
}

func (s *service) ListCardIDsByTag(ctx context.Context, deckID, tagName string) ([]string, error) {
	if deckID == "" {
		return nil, ErrInvalidDeckID
	}
	if tagName == "" {
		return nil, ErrEmptyTagName
	}
	return s.repo.GetCardIDsByTag(ctx, deckID, tagName)
}

func (s *service) SuggestTags(ctx context.Context, deckID, prefix string) ([]*models.Tag, error) {
	if deckID == "" {
		return nil, ErrInvalidDeckID
	}
	return s.repo.GetTagSuggestions(ctx, deckID, prefix, s.suggestLimit)
}

func (s *service) SyncCardTags(ctx context.Context, cardID, content string) ([]*models.Tag, error) {
	if cardID == "" {
		return nil, ErrInvalidCardID
	}
	return s.repo.SyncCardTags(ctx, cardID, content)
}
