package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/notes-board/internal/config"
	"github.com/notes-board/internal/models"
	"github.com/notes-board/internal/repository"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// SeedResult summarizes a card fixture import
type SeedResult struct {
	Inserted int  `json:"inserted"`
	Invalid  int  `json:"invalid"`
	Skipped  bool `json:"skipped"`
}

// seedService is the concrete implementation of SeedService
type seedService struct {
	cards repository.CardRepository
	cfg   *config.BoardConfig
	log   zerolog.Logger
}

// newSeedService creates a new SeedService
func newSeedService(cards repository.CardRepository, cfg *config.BoardConfig, log zerolog.Logger) *seedService {
	return &seedService{
		cards: cards,
		cfg:   cfg,
		log:   log.With().Str("service", "seed").Logger(),
	}
}

// SeedCards loads the YAML card fixture and inserts it into the card
// collection. If the collection already holds cards the import is skipped
// entirely; the fixture is a one-time load, not a sync.
func (s *seedService) SeedCards(ctx context.Context, path string) (*SeedResult, error) {
	count, err := s.cards.Count(ctx, s.cfg.CardListKey)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing cards: %w", err)
	}
	if count > 0 {
		s.log.Info().
			Int("existing", count).
			Str("collection", s.cfg.CardListKey).
			Msg("Card collection already populated, skipping seed")
		return &SeedResult{Skipped: true}, nil
	}

	records, err := loadCardFixture(path)
	if err != nil {
		return nil, err
	}

	// Creation timestamps are assigned in fixture order with a strict
	// increment so the read path's date ordering reproduces the fixture.
	// Titles are display text and repeat freely across the catalogue
	// (every worksession opens with a "Reflection" card); only the id is
	// a key.
	base := time.Now().UTC()
	cards := make([]*models.Card, 0, len(records))
	invalid := 0

	for i, rec := range records {
		if rec.Title == "" || rec.Content == "" {
			s.log.Warn().Int("index", i).Msg("Fixture card missing title or content, skipping record")
			invalid++
			continue
		}

		cards = append(cards, &models.Card{
			ID:            uuid.New().String(),
			CollectionKey: s.cfg.CardListKey,
			Title:         rec.Title,
			Content:       rec.Content,
			CreatedAt:     base.Add(time.Duration(i) * time.Millisecond),
		})
	}

	inserted, err := s.cards.BatchInsert(ctx, cards)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cards: %w", err)
	}

	s.log.Info().
		Int("inserted", inserted).
		Int("invalid", invalid).
		Str("collection", s.cfg.CardListKey).
		Msg("Card fixture imported")

	return &SeedResult{Inserted: inserted, Invalid: invalid}, nil
}

// loadCardFixture reads and decodes the YAML card fixture file
func loadCardFixture(path string) ([]models.CardSeed, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture %s: %w", path, err)
	}
	defer file.Close()

	var fixture struct {
		Cards []models.CardSeed `yaml:"cards"`
	}
	if err := yaml.NewDecoder(file).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}

	return fixture.Cards, nil
}
