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

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

func toModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID: d.PaymentID,
		WorkerID:  d.WorkerID,
		FirmID:    d.FirmID,
		Date:      d.Date,
		Amount:    d.Amount,
		Type:      string(d.Type),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID: m.PaymentID,
		WorkerID:  m.WorkerID,
		FirmID:    m.FirmID,
		Date:      m.Date,
		Amount:    m.Amount,
		Type:      domain.PaymentType(m.Type),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const paymentColumns = `payment_id, worker_id, firm_id, payment_date, amount, payment_type, created_at, created_by, last_updated_at, last_updated_by`

// SavePaymentInTx inserts a new payment inside an existing transaction.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := toModelPayment(payment)

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.WorkerID,
		m.FirmID,
		m.Date,
		m.Amount,
		m.Type,
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
				return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, m.PaymentID)
			case "23503":
				return fmt.Errorf("%w: worker or firm for payment %s does not exist", apperrors.ErrNotFound, m.PaymentID)
			}
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) listPayments(ctx context.Context, query string, arg string) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var m models.Payment
		err := rows.Scan(
			&m.PaymentID,
			&m.WorkerID,
			&m.FirmID,
			&m.Date,
			&m.Amount,
			&m.Type,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

// ListPaymentsByFirm retrieves all payments of a firm in creation order.
func (r *PgxPaymentRepository) ListPaymentsByFirm(ctx context.Context, firmID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE firm_id = $1 ORDER BY created_at ASC;`
	return r.listPayments(ctx, query, firmID)
}

// ListPaymentsByWorker retrieves all payments of one worker.
func (r *PgxPaymentRepository) ListPaymentsByWorker(ctx context.Context, workerID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE worker_id = $1 ORDER BY created_at ASC;`
	return r.listPayments(ctx, query, workerID)
}
