package mocks

import (
	"context"

	"github.com/notes-board/internal/models"
	"github.com/notes-board/internal/service"
)

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	View            *models.BoardView
	GetBoardError   error
	PostCommentFunc func(ctx context.Context, author models.Author, content string) (*models.Comment, error)
	PostedComments  []*models.Comment
	CardCount       int
	CommentCount    int
	CountsError     error
}

// Verify interface compliance
var _ service.BoardService = (*MockBoardService)(nil)

func NewMockBoardService() *MockBoardService {
	return &MockBoardService{
		View: &models.BoardView{
			Cards:    make([]*models.Card, 0),
			Comments: make([]*models.Comment, 0),
		},
		PostedComments: make([]*models.Comment, 0),
	}
}

func (m *MockBoardService) GetBoard(ctx context.Context) (*models.BoardView, error) {
	if m.GetBoardError != nil {
		return nil, m.GetBoardError
	}
	return m.View, nil
}

func (m *MockBoardService) PostComment(ctx context.Context, author models.Author, content string) (*models.Comment, error) {
	if m.PostCommentFunc != nil {
		return m.PostCommentFunc(ctx, author, content)
	}
	if content == "" {
		return nil, service.ErrEmptyContent
	}
	comment := &models.Comment{
		ID:      "test-comment-id",
		Author:  author,
		Content: content,
	}
	m.PostedComments = append(m.PostedComments, comment)
	return comment, nil
}

func (m *MockBoardService) Counts(ctx context.Context) (int, int, error) {
	if m.CountsError != nil {
		return 0, 0, m.CountsError
	}
	return m.CardCount, m.CommentCount, nil
}

// MockSeedService is a mock implementation of SeedService
type MockSeedService struct {
	SeedFunc    func(ctx context.Context, path string) (*service.SeedResult, error)
	SeededPaths []string
}

// Verify interface compliance
var _ service.SeedService = (*MockSeedService)(nil)

func NewMockSeedService() *MockSeedService {
	return &MockSeedService{
		SeededPaths: make([]string, 0),
	}
}

func (m *MockSeedService) SeedCards(ctx context.Context, path string) (*service.SeedResult, error) {
	if m.SeedFunc != nil {
		return m.SeedFunc(ctx, path)
	}
	m.SeededPaths = append(m.SeededPaths, path)
	return &service.SeedResult{Inserted: 0}, nil
}
