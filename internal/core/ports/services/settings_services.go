package services

import (
	"context"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsParams carries the optional settings fields of an update.
// Nil fields are left unchanged.
type UpdateSettingsParams struct {
	PricePerKg *decimal.Decimal
	Currency   *string
	Theme      *domain.Theme
}

// SettingsSvcFacade defines the operations on the app settings.
type SettingsSvcFacade interface {
	// GetSettings retrieves the current settings.
	GetSettings(ctx context.Context) (*domain.AppSettings, error)

	// UpdateSettings applies a partial settings update.
	UpdateSettings(ctx context.Context, params UpdateSettingsParams, updaterUserID string) (*domain.AppSettings, error)

	// EnsureSettings seeds the settings row with defaults when none exists
	// yet. Called once at startup.
	EnsureSettings(ctx context.Context, defaults domain.AppSettings) error
}
