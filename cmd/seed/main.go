package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"review-seeder/internal/config"
	"review-seeder/internal/database"
	"review-seeder/internal/logger"
	"review-seeder/internal/progress"
	"review-seeder/internal/repository"
	"review-seeder/internal/seed"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// Load .env (ignore error when vars are set directly)
	_ = godotenv.Load()

	errLog, err := run(context.Background(), nil, os.Stdout, os.Stderr)
	if err != nil {
		errLog.Error().Err(err).Msg("❌ Seeding failed")
		os.Exit(1)
	}
}

// run performs one seeding pass. environ overrides the process environment
// when non-nil. The returned logger writes to stderr in the run's configured
// format and carries its run_id once config has loaded.
func run(ctx context.Context, environ map[string]string, stdout, stderr io.Writer) (zerolog.Logger, error) {
	errLog := logger.New("info", "console", stderr)

	cfg, err := config.LoadFrom(environ)
	if err != nil {
		return errLog, err
	}

	runID := uuid.NewString()
	log := logger.New(cfg.Level, cfg.Format, stdout).With().Str("run_id", runID).Logger()
	errLog = logger.New(cfg.Level, cfg.Format, stderr).With().Str("run_id", runID).Logger()

	store, err := database.Connect(ctx, cfg.URI, cfg.DBName, cfg.ConnectTimeout)
	if err != nil {
		return errLog, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() {
		if err := store.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to disconnect from MongoDB")
		}
	}()
	log.Info().Str("db", cfg.DBName).Msg("✅ Connected to MongoDB")

	reviewRepo := repository.NewReviewRepo(store.Collection(cfg.ReviewCollection))
	itemRepo := repository.NewItemRepo(store.Collection(cfg.ItemCollection))

	if err := reviewRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("⚠️  Warning: failed to create review indexes")
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	synth := seed.NewSynthesizer(rng)
	orch := seed.NewOrchestrator(itemRepo, reviewRepo, synth, rng, progress.NewLogReporter(log))

	_, err = orch.Run(ctx)
	return errLog, err
}
