package repository

import (
	"context"

	"github.com/notes-board/internal/database"
	"github.com/notes-board/internal/models"
)

// CardRepository defines the interface for card data operations
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	BatchInsert(ctx context.Context, cards []*models.Card) (int, error)
	// List returns every card in the collection ordered by ascending
	// creation date.
	List(ctx context.Context, collectionKey string) ([]*models.Card, error)
	Count(ctx context.Context, collectionKey string) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// List returns every comment in the collection ordered by descending
	// creation date (newest first).
	List(ctx context.Context, collectionKey string) ([]*models.Comment, error)
	Count(ctx context.Context, collectionKey string) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Card    CardRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Card:    NewCardRepo(db),
		Comment: NewCommentRepo(db),
	}
}
