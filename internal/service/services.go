package service

import (
	"context"

	"github.com/notes-board/internal/config"
	"github.com/notes-board/internal/models"
	"github.com/notes-board/internal/repository"
	"github.com/rs/zerolog"
)

// BoardService defines the interface for board read and write operations
type BoardService interface {
	// GetBoard fetches the full card and comment sets for display.
	GetBoard(ctx context.Context) (*models.BoardView, error)

	// PostComment validates and persists one new comment. Empty content
	// returns ErrEmptyContent and persists nothing.
	PostComment(ctx context.Context, author models.Author, content string) (*models.Comment, error)

	// Counts reports the number of stored cards and comments.
	Counts(ctx context.Context) (cards, comments int, err error)
}

// SeedService defines the interface for the one-time card fixture import
type SeedService interface {
	SeedCards(ctx context.Context, path string) (*SeedResult, error)
}

// Services holds all service interfaces
type Services struct {
	Board BoardService
	Seed  SeedService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Board: newBoardService(repos, &cfg.Board, log),
		Seed:  newSeedService(repos.Card, &cfg.Board, log),
	}
}
