package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ksaito/tctally/internal/db"
	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/repository"
	"github.com/rs/zerolog"
)

type settingsService struct {
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	log      zerolog.Logger
	now      func() time.Time
}

// NewSettingsService creates a SettingsService over the given repository.
func NewSettingsService(settings repository.SettingsRepo, uow db.UnitOfWork, log zerolog.Logger) SettingsService {
	return &settingsService{
		settings: settings,
		uow:      uow,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *settingsService) Load(ctx context.Context, userID string) domain.Settings {
	stored, err := s.settings.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			// Soft-fail: a broken store degrades to defaults rather than
			// blocking the session.
			s.log.Warn().Err(err).Str("user", userID).Msg("loading settings failed, using defaults")
		}
		return domain.DefaultSettings()
	}
	return stored
}

func (s *settingsService) Save(ctx context.Context, userID string, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// The merge read-modify-write runs in one transaction so a concurrent
	// save cannot interleave between the read and the upsert.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSettings := repository.NewSQLiteSettingsRepo(tx)
		if err := txSettings.Put(ctx, userID, settings, s.now()); err != nil {
			s.log.Error().Err(err).Str("user", userID).Msg("saving settings failed")
			return fmt.Errorf("saving settings: %w", err)
		}
		return nil
	})
}
