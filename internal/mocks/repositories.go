package mocks

import (
	"context"
	"sort"

	"github.com/notes-board/internal/models"
	"github.com/notes-board/internal/repository"
)

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	Cards            []*models.Card
	InsertError      error
	ListError        error
	CountError       error
	BatchInsertFunc  func(ctx context.Context, cards []*models.Card) (int, error)
	BatchInsertCalls int
}

// Verify interface compliance
var _ repository.CardRepository = (*MockCardRepository)(nil)

func NewMockCardRepository() *MockCardRepository {
	return &MockCardRepository{
		Cards: make([]*models.Card, 0),
	}
}

func (m *MockCardRepository) Create(ctx context.Context, card *models.Card) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Cards = append(m.Cards, card)
	return nil
}

func (m *MockCardRepository) BatchInsert(ctx context.Context, cards []*models.Card) (int, error) {
	m.BatchInsertCalls++
	if m.BatchInsertFunc != nil {
		return m.BatchInsertFunc(ctx, cards)
	}
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	m.Cards = append(m.Cards, cards...)
	return len(cards), nil
}

func (m *MockCardRepository) List(ctx context.Context, collectionKey string) ([]*models.Card, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	cards := make([]*models.Card, 0)
	for _, card := range m.Cards {
		if card.CollectionKey == collectionKey {
			cards = append(cards, card)
		}
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})
	return cards, nil
}

func (m *MockCardRepository) Count(ctx context.Context, collectionKey string) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	count := 0
	for _, card := range m.Cards {
		if card.CollectionKey == collectionKey {
			count++
		}
	}
	return count, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    []*models.Comment
	InsertError error
	ListError   error
	CountError  error
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make([]*models.Comment, 0),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Comments = append(m.Comments, comment)
	return nil
}

func (m *MockCommentRepository) List(ctx context.Context, collectionKey string) ([]*models.Comment, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	comments := make([]*models.Comment, 0)
	for _, comment := range m.Comments {
		if comment.CollectionKey == collectionKey {
			comments = append(comments, comment)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Count(ctx context.Context, collectionKey string) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	count := 0
	for _, comment := range m.Comments {
		if comment.CollectionKey == collectionKey {
			count++
		}
	}
	return count, nil
}
