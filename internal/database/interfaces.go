package database

import (
	"context"
	"time"

	"github.com/jotdeck/jotdeck/internal/models"
)

// DeckStore defines deck persistence operations.
type DeckStore interface {
	CreateDeck(ctx context.Context, name string, sortOrder models.SortOrder) (*models.Deck, error)
	GetDeckByID(ctx context.Context, id string) (*models.Deck, error)
	GetAllDecks(ctx context.Context) ([]*models.Deck, error)
	UpdateDeck(ctx context.Context, id string, name *string, sortOrder *models.SortOrder) (*models.Deck, error)
	DeleteDeck(ctx context.Context, id string) error
}

// ColumnStore defines column persistence operations.
type ColumnStore interface {
	CreateColumn(ctx context.Context, deckID, name string) (*models.Column, error)
	CreateColumnAt(ctx context.Context, deckID, name string, index int) (*models.Column, error)
	GetColumnByID(ctx context.Context, id string) (*models.Column, error)
	GetColumnsByDeck(ctx context.Context, deckID string) ([]*models.Column, error)
	GetDeletedColumns(ctx context.Context, deckID string) ([]*models.Column, error)
	RenameColumn(ctx context.Context, id, name string) (*models.Column, error)
	MoveColumn(ctx context.Context, id string, newIndex int) (*models.Column, error)
	SoftDeleteColumn(ctx context.Context, id string) error
	RestoreColumn(ctx context.Context, id string) (*models.Column, error)
}

// CardStore defines card persistence operations.
type CardStore interface {
	CreateCard(ctx context.Context, columnID, content string) (*models.Card, error)
	CreateCardAt(ctx context.Context, columnID, content string, index int) (*models.Card, error)
	GetCardByID(ctx context.Context, id string) (*models.Card, error)
	GetCardsByColumn(ctx context.Context, columnID string) ([]*models.Card, error)
	GetDeletedCards(ctx context.Context, columnID string) ([]*models.Card, error)
	GetDeletedCardsByDeck(ctx context.Context, deckID string) ([]*models.Card, error)
	UpdateCardContent(ctx context.Context, id, content string) (*models.Card, error)
	UpdateCardScore(ctx context.Context, id string, delta int) (*models.Card, error)
	MoveCardToColumn(ctx context.Context, id, newColumnID string) (*models.Card, error)
	MoveCard(ctx context.Context, id string, newIndex int) (*models.Card, error)
	SoftDeleteCard(ctx context.Context, id string) error
	RestoreCard(ctx context.Context, id string) (*models.Card, error)
}

// TagStore defines the tag index operations.
type TagStore interface {
	SyncCardTags(ctx context.Context, cardID, content string) ([]*models.Tag, error)
	GetTagsByCard(ctx context.Context, cardID string) ([]*models.Tag, error)
	GetTagsByDeck(ctx context.Context, deckID string) ([]*models.Tag, error)
	GetCardIDsByTag(ctx context.Context, deckID, tagName string) ([]string, error)
	GetTagSuggestions(ctx context.Context, deckID, prefix string, limit int) ([]*models.Tag, error)
}

// CleanupStore defines the retention cleanup batch.
type CleanupStore interface {
	RunCleanup(ctx context.Context, threshold time.Time) (models.CleanupResult, error)
	RunCleanupWithRetention(ctx context.Context, retentionDays int) (models.CleanupResult, error)
}

// DataStore is the full persistence surface consumed by the service layer.
type DataStore interface {
	DeckStore
	ColumnStore
	CardStore
	TagStore
	CleanupStore
}

// Repository must satisfy the full DataStore surface.
var _ DataStore = (*Repository)(nil)
