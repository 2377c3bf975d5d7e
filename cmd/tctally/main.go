package main

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/ksaito/tctally/internal/cli"
	"github.com/ksaito/tctally/internal/config"
	"github.com/ksaito/tctally/internal/db"
	"github.com/ksaito/tctally/internal/repository"
	"github.com/ksaito/tctally/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	// One process at a time: the result documents are rewritten whole,
	// so concurrent writers would clobber each other.
	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another tctally instance is already running")
	}
	defer lock.Unlock()

	database, err := db.OpenDB(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	resultRepo := repository.NewSQLiteResultRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	sisterRepo := repository.NewSQLiteSisterRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Settings: service.NewSettingsService(settingsRepo, uow, log),
		Sisters:  service.NewSisterService(sisterRepo),
		Ledgers:  service.NewLedgerService(resultRepo, sisterRepo, cfg.StrictTime, log),
		Config:   cfg,
	}

	return cli.NewRootCmd(app).Execute()
}
