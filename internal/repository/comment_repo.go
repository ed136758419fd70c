package repository

import (
	"context"

	"github.com/notes-board/internal/database"
	"github.com/notes-board/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment with its embedded author
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, collection_key, author_identity, author_name, author_email, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.CollectionKey,
		comment.Author.Identity, comment.Author.Name, comment.Author.Email,
		comment.Content, comment.CreatedAt,
	)
	return err
}

// List retrieves all comments in a collection, newest first
func (r *commentRepo) List(ctx context.Context, collectionKey string) ([]*models.Comment, error) {
	query := `
		SELECT id, collection_key, author_identity, author_name, author_email, content, created_at
		FROM comments
		WHERE collection_key = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, collectionKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.CollectionKey,
			&comment.Author.Identity, &comment.Author.Name, &comment.Author.Email,
			&comment.Content, &comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// Count returns the number of comments in the collection
func (r *commentRepo) Count(ctx context.Context, collectionKey string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM comments WHERE collection_key = $1", collectionKey,
	).Scan(&count)
	return count, err
}
