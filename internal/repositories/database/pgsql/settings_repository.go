package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	"github.com/kajuworks/cashew_track_app/internal/models"
)

type PgxSettingsRepository struct {
	pool *pgxpool.Pool
}

// newPgxSettingsRepository creates a new repository for the app settings row.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{pool: pool}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func toDomainSettings(m models.AppSettings) domain.AppSettings {
	return domain.AppSettings{
		SettingsID: m.SettingsID,
		PricePerKg: m.PricePerKg,
		Currency:   m.Currency,
		Theme:      domain.Theme(m.Theme),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// GetSettings retrieves the single settings row.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	query := `
		SELECT settings_id, price_per_kg, currency, theme, created_at, created_by, last_updated_at, last_updated_by
		FROM app_settings
		LIMIT 1;
	`
	var m models.AppSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&m.SettingsID,
		&m.PricePerKg,
		&m.Currency,
		&m.Theme,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	s := toDomainSettings(m)
	return &s, nil
}

// SaveSettings upserts the settings row.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	query := `
		INSERT INTO app_settings (settings_id, price_per_kg, currency, theme, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (settings_id) DO UPDATE
		SET price_per_kg = EXCLUDED.price_per_kg,
		    currency = EXCLUDED.currency,
		    theme = EXCLUDED.theme,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		settings.SettingsID,
		settings.PricePerKg,
		settings.Currency,
		string(settings.Theme),
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
