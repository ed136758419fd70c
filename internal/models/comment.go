package models

import (
	"time"
)

// AnonymousSentinel is the placeholder identity value used when no real
// identity is available or supplied.
const AnonymousSentinel = "Anonymous"

// Author is the identity attached to a comment. It is a value embedded in
// the comment, not an independently stored entity. All three fields are
// filled together by exactly one resolution rule; never partially.
type Author struct {
	Identity string `json:"identity" db:"author_identity"`
	Name     string `json:"name" db:"author_name"`
	Email    string `json:"email" db:"author_email"`
}

// AnonymousAuthor returns the all-sentinel author used when a commenter
// is unauthenticated and supplied no identification at all.
func AnonymousAuthor() Author {
	return Author{
		Identity: AnonymousSentinel,
		Name:     AnonymousSentinel,
		Email:    AnonymousSentinel,
	}
}

// Comment represents a user-submitted comment on the board.
// Comments are created only by the write path and never edited or deleted.
type Comment struct {
	ID            string    `json:"id" db:"id"`
	CollectionKey string    `json:"-" db:"collection_key"`
	Author        Author    `json:"author"`
	Content       string    `json:"content" db:"content"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
