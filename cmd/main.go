package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lightbnb/internal/config"
	"lightbnb/internal/logger"
	"lightbnb/internal/models"
	"lightbnb/internal/repository"
	"lightbnb/internal/repository/db"
	"lightbnb/internal/seed"
	"lightbnb/internal/service"

	_ "github.com/joho/godotenv/autoload"
)

const startupTimeout = 30 * time.Second

func main() {
	if err := run("configs", "."); err != nil {
		os.Exit(1)
	}
}

// run wires the application and returns once the sample search has been
// reported. Deferred cleanup runs before main decides the exit code.
func run(configPaths ...string) error {
	cfg, err := config.Load(configPaths...)
	if err != nil {
		logger.Get(logger.InfoLevel).Errorw("error reading config", "err", err)
		return err
	}

	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	conn, err := db.Open(cfg.Database)
	if err != nil {
		log.Errorw("failed to open database", "driver", cfg.Database.Driver, "err", err)
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()
	log.Infow("connected to the database", "driver", cfg.Database.Driver, "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if cfg.Seed.Enabled {
		if err := seedStore(ctx, conn, cfg.Seed.Path, log); err != nil {
			log.Errorw("seed failed", "path", cfg.Seed.Path, "err", err)
			return err
		}
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, log)

	return report(ctx, services, log)
}

// seedStore loads the JSON fixture file into an empty store.
func seedStore(ctx context.Context, conn *sql.DB, path string, log *logger.Logger) error {
	fixtures, err := seed.Load(path)
	if err != nil {
		return err
	}
	seeded, err := seed.Apply(ctx, conn, fixtures)
	if err != nil {
		return err
	}
	if seeded {
		log.Infow("store seeded", "path", path,
			"users", len(fixtures.Users),
			"properties", len(fixtures.Properties),
			"reservations", len(fixtures.Reservations))
	} else {
		log.Infow("store already populated; seed skipped", "path", path)
	}
	return nil
}

// report runs a sample search so a fresh deployment can confirm the
// store answers queries.
func report(ctx context.Context, services *service.Service, log *logger.Logger) error {
	props, err := services.Properties.Search(ctx, models.PropertyFilter{}, repository.DefaultLimit)
	if err != nil {
		log.Errorw("sample search failed", "err", err)
		return err
	}
	for _, p := range props {
		log.Infow("listing",
			"id", p.ID,
			"title", p.Title,
			"city", p.City,
			"cost_per_night", p.CostPerNight,
			"average_rating", p.AverageRating)
	}
	log.Infow("ready", "listings", len(props))
	return nil
}
