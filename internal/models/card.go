package models

import (
	"time"
)

// Card represents a pre-authored study card displayed on the board.
// Cards are created only by the seed importer and never mutated.
type Card struct {
	ID            string    `json:"id" db:"id"`
	CollectionKey string    `json:"-" db:"collection_key"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// CardSeed represents a card record from the YAML seed fixture
type CardSeed struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}
