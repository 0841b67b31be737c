package repositories

import (
	"context"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// SettingsReader defines read operations for the app settings row.
type SettingsReader interface {
	// GetSettings retrieves the settings row.
	GetSettings(ctx context.Context) (*domain.AppSettings, error)
}

// SettingsWriter defines write operations for the app settings row.
type SettingsWriter interface {
	// SaveSettings upserts the settings row.
	SaveSettings(ctx context.Context, settings domain.AppSettings) error
}

// SettingsRepositoryFacade combines the settings repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
