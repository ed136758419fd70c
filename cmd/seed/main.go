package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/notes-board/internal/config"
	"github.com/notes-board/internal/database"
	"github.com/notes-board/internal/repository"
	"github.com/notes-board/internal/service"
	"github.com/notes-board/pkg/logger"
)

func main() {
	log := logger.New()

	fixturePath := flag.String("fixture", "", "path to the card fixture (defaults to BOARD_SEED_PATH)")
	down := flag.Bool("down", false, "roll back the last migration instead of seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	path := *fixturePath
	if path == "" {
		path = cfg.Board.SeedPath
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}

	if *down {
		if err := db.MigrateDown(migrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to roll back migration")
		}
		return
	}

	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	repos := repository.New(db)
	services := service.NewServices(repos, cfg, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := services.Seed.SeedCards(ctx, path)
	if err != nil {
		log.Fatal().Err(err).Str("fixture", path).Msg("Seed failed")
	}

	if result.Skipped {
		log.Info().Msg("Card collection already populated, nothing to do")
		return
	}

	log.Info().
		Int("inserted", result.Inserted).
		Int("invalid", result.Invalid).
		Str("fixture", path).
		Msg("Seed completed")
}
