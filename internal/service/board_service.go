package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/notes-board/internal/config"
	"github.com/notes-board/internal/models"
	"github.com/notes-board/internal/repository"
	"github.com/rs/zerolog"
)

// ErrEmptyContent is returned when a comment submission has no content.
// The caller recovers it as a silent redirect; nothing is persisted.
var ErrEmptyContent = errors.New("comment content is empty")

// boardService is the concrete implementation of BoardService
type boardService struct {
	repos *repository.Repositories
	cfg   *config.BoardConfig
	log   zerolog.Logger
}

// newBoardService creates a new BoardService
func newBoardService(repos *repository.Repositories, cfg *config.BoardConfig, log zerolog.Logger) *boardService {
	return &boardService{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("service", "board").Logger(),
	}
}

// GetBoard fetches all cards oldest-first and all comments newest-first.
// The corpus is small enough to return in full; no pagination.
func (s *boardService) GetBoard(ctx context.Context) (*models.BoardView, error) {
	cards, err := s.repos.Card.List(ctx, s.cfg.CardListKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}

	comments, err := s.repos.Comment.List(ctx, s.cfg.CommentListKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	s.log.Debug().
		Int("cards", len(cards)).
		Int("comments", len(comments)).
		Msg("Board fetched")

	return &models.BoardView{
		Cards:    cards,
		Comments: comments,
	}, nil
}

// PostComment persists one new comment with its resolved author. After a
// successful write it pauses for the configured settle delay so the
// immediately following page render sees the comment; a latency hedge, not
// a correctness guarantee.
func (s *boardService) PostComment(ctx context.Context, author models.Author, content string) (*models.Comment, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	comment := &models.Comment{
		ID:            uuid.New().String(),
		CollectionKey: s.cfg.CommentListKey,
		Author:        author,
		Content:       content,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to persist comment: %w", err)
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Str("author_identity", author.Identity).
		Msg("Comment created")

	if s.cfg.PostSettleDelay > 0 {
		time.Sleep(s.cfg.PostSettleDelay)
	}

	return comment, nil
}

// Counts reports stored card and comment totals
func (s *boardService) Counts(ctx context.Context) (int, int, error) {
	cards, err := s.repos.Card.Count(ctx, s.cfg.CardListKey)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count cards: %w", err)
	}

	comments, err := s.repos.Comment.Count(ctx, s.cfg.CommentListKey)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return cards, comments, nil
}
