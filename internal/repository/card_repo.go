package repository

import (
	"context"

	"github.com/lib/pq"
	"github.com/notes-board/internal/database"
	"github.com/notes-board/internal/models"
)

// cardRepo is the concrete implementation of CardRepository
type cardRepo struct {
	db *database.DB
}

// NewCardRepo creates a new card repository
func NewCardRepo(db *database.DB) CardRepository {
	return &cardRepo{db: db}
}

// Create inserts a new card
func (r *cardRepo) Create(ctx context.Context, card *models.Card) error {
	query := `
		INSERT INTO cards (id, collection_key, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		card.ID, card.CollectionKey, card.Title, card.Content, card.CreatedAt,
	)
	return err
}

// BatchInsert inserts multiple cards using PostgreSQL COPY
func (r *cardRepo) BatchInsert(ctx context.Context, cards []*models.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("cards",
		"id", "collection_key", "title", "content", "created_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, card := range cards {
		_, err := stmt.ExecContext(ctx,
			card.ID, card.CollectionKey, card.Title, card.Content, card.CreatedAt,
		)
		if err != nil {
			continue
		}
		inserted++
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return inserted, nil
}

// List retrieves all cards in a collection, oldest first
func (r *cardRepo) List(ctx context.Context, collectionKey string) ([]*models.Card, error) {
	query := `
		SELECT id, collection_key, title, content, created_at
		FROM cards
		WHERE collection_key = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, collectionKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]*models.Card, 0)
	for rows.Next() {
		var card models.Card
		err := rows.Scan(
			&card.ID, &card.CollectionKey, &card.Title, &card.Content, &card.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}

	return cards, rows.Err()
}

// Count returns the number of cards in the collection
func (r *cardRepo) Count(ctx context.Context, collectionKey string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cards WHERE collection_key = $1", collectionKey,
	).Scan(&count)
	return count, err
}
