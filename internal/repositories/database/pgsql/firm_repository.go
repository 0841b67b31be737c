package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	"github.com/kajuworks/cashew_track_app/internal/models"
)

type PgxFirmRepository struct {
	pool *pgxpool.Pool
}

// newPgxFirmRepository creates a new repository for firm data.
func newPgxFirmRepository(pool *pgxpool.Pool) portsrepo.FirmRepositoryFacade {
	return &PgxFirmRepository{pool: pool}
}

var _ portsrepo.FirmRepositoryFacade = (*PgxFirmRepository)(nil)

func toModelFirm(d domain.Firm) models.Firm {
	return models.Firm{
		FirmID:   d.FirmID,
		Name:     d.Name,
		Location: d.Location,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainFirm(m models.Firm) domain.Firm {
	return domain.Firm{
		FirmID:   m.FirmID,
		Name:     m.Name,
		Location: m.Location,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveFirm inserts a new firm.
func (r *PgxFirmRepository) SaveFirm(ctx context.Context, firm domain.Firm) error {
	model := toModelFirm(firm)

	query := `
		INSERT INTO firms (firm_id, name, location, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		model.FirmID,
		model.Name,
		model.Location,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: firm with ID %s already exists", apperrors.ErrDuplicate, model.FirmID)
		}
		return fmt.Errorf("failed to save firm %s: %w", model.FirmID, err)
	}
	return nil
}

const firmColumns = `firm_id, name, location, created_at, created_by, last_updated_at, last_updated_by`

func scanFirm(row pgx.Row) (*domain.Firm, error) {
	var m models.Firm
	err := row.Scan(
		&m.FirmID,
		&m.Name,
		&m.Location,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan firm row: %w", err)
	}
	f := toDomainFirm(m)
	return &f, nil
}

// FindFirmByID retrieves a firm by its ID.
func (r *PgxFirmRepository) FindFirmByID(ctx context.Context, firmID string) (*domain.Firm, error) {
	query := `SELECT ` + firmColumns + ` FROM firms WHERE firm_id = $1;`
	return scanFirm(r.pool.QueryRow(ctx, query, firmID))
}

// ListFirms retrieves all firms in creation order.
func (r *PgxFirmRepository) ListFirms(ctx context.Context) ([]domain.Firm, error) {
	query := `SELECT ` + firmColumns + ` FROM firms ORDER BY created_at ASC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query firms: %w", err)
	}
	defer rows.Close()

	var firms []domain.Firm
	for rows.Next() {
		f, err := scanFirm(rows)
		if err != nil {
			return nil, err
		}
		firms = append(firms, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating firm rows: %w", err)
	}
	return firms, nil
}
