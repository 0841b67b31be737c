package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	"github.com/kajuworks/cashew_track_app/internal/models"
)

type PgxWorkerRepository struct {
	BaseRepository
}

// newPgxWorkerRepository creates a new repository for worker data.
func newPgxWorkerRepository(pool *pgxpool.Pool) portsrepo.WorkerRepositoryWithTx {
	return &PgxWorkerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkerRepositoryWithTx = (*PgxWorkerRepository)(nil)

func toModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:          d.WorkerID,
		FirmID:            d.FirmID,
		Name:              d.Name,
		Phone:             d.Phone,
		Avatar:            d.Avatar,
		TotalKgsProcessed: d.TotalKgsProcessed,
		TotalAmount:       d.TotalAmount,
		AdvanceAmount:     d.AdvanceAmount,
		PayoutsMade:       d.PayoutsMade,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:          m.WorkerID,
		FirmID:            m.FirmID,
		Name:              m.Name,
		Phone:             m.Phone,
		Avatar:            m.Avatar,
		TotalKgsProcessed: m.TotalKgsProcessed,
		TotalAmount:       m.TotalAmount,
		AdvanceAmount:     m.AdvanceAmount,
		PayoutsMade:       m.PayoutsMade,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const workerColumns = `worker_id, firm_id, name, phone, avatar, total_kgs_processed, total_amount, advance_amount, payouts_made, created_at, created_by, last_updated_at, last_updated_by`

const insertWorkerQuery = `
	INSERT INTO workers (` + workerColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

func insertWorkerArgs(m models.Worker) []any {
	return []any{
		m.WorkerID,
		m.FirmID,
		m.Name,
		m.Phone,
		m.Avatar,
		m.TotalKgsProcessed,
		m.TotalAmount,
		m.AdvanceAmount,
		m.PayoutsMade,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func wrapWorkerInsertErr(err error, workerID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: worker with ID %s already exists", apperrors.ErrDuplicate, workerID)
		case "23503":
			return fmt.Errorf("%w: firm for worker %s does not exist", apperrors.ErrNotFound, workerID)
		}
	}
	return fmt.Errorf("failed to save worker %s: %w", workerID, err)
}

// SaveWorker inserts a new worker.
func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	m := toModelWorker(worker)
	if _, err := r.Pool.Exec(ctx, insertWorkerQuery, insertWorkerArgs(m)...); err != nil {
		return wrapWorkerInsertErr(err, m.WorkerID)
	}
	return nil
}

// SaveWorkerInTx inserts a new worker inside an existing transaction.
func (r *PgxWorkerRepository) SaveWorkerInTx(ctx context.Context, tx pgx.Tx, worker domain.Worker) error {
	m := toModelWorker(worker)
	if _, err := tx.Exec(ctx, insertWorkerQuery, insertWorkerArgs(m)...); err != nil {
		return wrapWorkerInsertErr(err, m.WorkerID)
	}
	return nil
}

func scanWorker(row pgx.Row) (*domain.Worker, error) {
	var m models.Worker
	err := row.Scan(
		&m.WorkerID,
		&m.FirmID,
		&m.Name,
		&m.Phone,
		&m.Avatar,
		&m.TotalKgsProcessed,
		&m.TotalAmount,
		&m.AdvanceAmount,
		&m.PayoutsMade,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan worker row: %w", err)
	}
	w := toDomainWorker(m)
	return &w, nil
}

// FindWorkerByID retrieves a worker by its ID.
func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE worker_id = $1;`
	return scanWorker(r.Pool.QueryRow(ctx, query, workerID))
}

// FindWorkerByName retrieves a worker by exact name within a firm.
func (r *PgxWorkerRepository) FindWorkerByName(ctx context.Context, firmID, name string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE firm_id = $1 AND name = $2;`
	return scanWorker(r.Pool.QueryRow(ctx, query, firmID, name))
}

// ListWorkersByFirm retrieves all workers of a firm in creation order.
func (r *PgxWorkerRepository) ListWorkersByFirm(ctx context.Context, firmID string) ([]domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE firm_id = $1 ORDER BY created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, firmID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers for firm %s: %w", firmID, err)
	}
	defer rows.Close()

	var workers []domain.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating worker rows: %w", err)
	}
	return workers, nil
}

// UpdateWorkerProfile updates the identity fields of a worker. The counter
// columns are deliberately absent from the statement.
func (r *PgxWorkerRepository) UpdateWorkerProfile(ctx context.Context, worker domain.Worker) error {
	query := `
		UPDATE workers
		SET name = $2, phone = $3, avatar = $4, last_updated_at = $5, last_updated_by = $6
		WHERE worker_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		worker.WorkerID,
		worker.Name,
		worker.Phone,
		worker.Avatar,
		worker.LastUpdatedAt,
		worker.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker %s: %w", worker.WorkerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyCounterDeltasInTx adds deltas to the worker's running counters inside
// an existing transaction.
func (r *PgxWorkerRepository) ApplyCounterDeltasInTx(ctx context.Context, tx pgx.Tx, workerID string, deltas domain.WorkerCounterDeltas, updatedBy string, now time.Time) error {
	query := `
		UPDATE workers
		SET total_kgs_processed = total_kgs_processed + $2,
		    total_amount = total_amount + $3,
		    advance_amount = advance_amount + $4,
		    payouts_made = payouts_made + $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE worker_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		workerID,
		deltas.KgsProcessed,
		deltas.Amount,
		deltas.Advance,
		deltas.Payouts,
		now,
		updatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to apply counter deltas for worker %s: %w", workerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
