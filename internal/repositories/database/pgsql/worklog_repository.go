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

type PgxWorkLogRepository struct {
	BaseRepository
}

// newPgxWorkLogRepository creates a new repository for work-log data.
func newPgxWorkLogRepository(pool *pgxpool.Pool) portsrepo.WorkLogRepositoryWithTx {
	return &PgxWorkLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkLogRepositoryWithTx = (*PgxWorkLogRepository)(nil)

func toModelWorkLog(d domain.WorkLog) models.WorkLog {
	return models.WorkLog{
		WorkLogID:    d.WorkLogID,
		WorkerID:     d.WorkerID,
		FirmID:       d.FirmID,
		Date:         d.Date,
		KgsProcessed: d.KgsProcessed,
		AmountEarned: d.AmountEarned,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainWorkLog(m models.WorkLog) domain.WorkLog {
	return domain.WorkLog{
		WorkLogID:    m.WorkLogID,
		WorkerID:     m.WorkerID,
		FirmID:       m.FirmID,
		Date:         m.Date,
		KgsProcessed: m.KgsProcessed,
		AmountEarned: m.AmountEarned,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const workLogColumns = `work_log_id, worker_id, firm_id, log_date, kgs_processed, amount_earned, created_at, created_by, last_updated_at, last_updated_by`

// SaveWorkLogInTx inserts a new work log inside an existing transaction.
func (r *PgxWorkLogRepository) SaveWorkLogInTx(ctx context.Context, tx pgx.Tx, log domain.WorkLog) error {
	m := toModelWorkLog(log)

	query := `
		INSERT INTO work_logs (` + workLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.WorkLogID,
		m.WorkerID,
		m.FirmID,
		m.Date,
		m.KgsProcessed,
		m.AmountEarned,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: work log with ID %s already exists", apperrors.ErrDuplicate, m.WorkLogID)
			case "23503":
				return fmt.Errorf("%w: worker or firm for work log %s does not exist", apperrors.ErrNotFound, m.WorkLogID)
			}
		}
		return fmt.Errorf("failed to save work log %s: %w", m.WorkLogID, err)
	}
	return nil
}

func (r *PgxWorkLogRepository) listWorkLogs(ctx context.Context, query string, arg string) ([]domain.WorkLog, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query work logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.WorkLog
	for rows.Next() {
		var m models.WorkLog
		err := rows.Scan(
			&m.WorkLogID,
			&m.WorkerID,
			&m.FirmID,
			&m.Date,
			&m.KgsProcessed,
			&m.AmountEarned,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work log row: %w", err)
		}
		logs = append(logs, toDomainWorkLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work log rows: %w", err)
	}
	return logs, nil
}

// ListWorkLogsByFirm retrieves all work logs of a firm in creation order.
func (r *PgxWorkLogRepository) ListWorkLogsByFirm(ctx context.Context, firmID string) ([]domain.WorkLog, error) {
	query := `SELECT ` + workLogColumns + ` FROM work_logs WHERE firm_id = $1 ORDER BY created_at ASC;`
	return r.listWorkLogs(ctx, query, firmID)
}

// ListWorkLogsByWorker retrieves all work logs of one worker.
func (r *PgxWorkLogRepository) ListWorkLogsByWorker(ctx context.Context, workerID string) ([]domain.WorkLog, error) {
	query := `SELECT ` + workLogColumns + ` FROM work_logs WHERE worker_id = $1 ORDER BY created_at ASC;`
	return r.listWorkLogs(ctx, query, workerID)
}
