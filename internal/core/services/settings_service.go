package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
)

// settingsService implements the SettingsSvcFacade interface.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: repo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings returns the application settings row.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load settings")
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies a partial update to the settings row.
func (s *settingsService) UpdateSettings(ctx context.Context, params portssvc.UpdateSettingsParams, updaterUserID string) (*domain.AppSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if params.PricePerKg != nil {
		if params.PricePerKg.IsNegative() {
			return nil, fmt.Errorf("%w: pricePerKg cannot be negative", apperrors.ErrValidation)
		}
		settings.PricePerKg = *params.PricePerKg
	}
	if params.Currency != nil {
		settings.Currency = *params.Currency
	}
	if params.Theme != nil {
		if !params.Theme.Valid() {
			return nil, fmt.Errorf("%w: unknown theme %q", apperrors.ErrValidation, *params.Theme)
		}
		settings.Theme = *params.Theme
	}
	settings.LastUpdatedAt = time.Now()
	settings.LastUpdatedBy = updaterUserID

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, err
	}
	return settings, nil
}

// EnsureSettings seeds the settings row on first boot if none exists.
func (s *settingsService) EnsureSettings(ctx context.Context, defaults domain.AppSettings) error {
	_, err := s.settingsRepo.GetSettings(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	now := time.Now()
	defaults.SettingsID = uuid.NewString()
	defaults.CreatedAt = now
	defaults.CreatedBy = "system"
	defaults.LastUpdatedAt = now
	defaults.LastUpdatedBy = "system"
	if defaults.Theme == "" {
		defaults.Theme = domain.ThemeLight
	}

	if err := s.settingsRepo.SaveSettings(ctx, defaults); err != nil {
		s.LogError(ctx, err, "Failed to seed settings")
		return err
	}
	s.LogInfo(ctx, "Settings seeded with defaults")
	return nil
}
