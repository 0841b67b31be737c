package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// ListPaymentsByFirm retrieves all payments of a firm in creation order.
	ListPaymentsByFirm(ctx context.Context, firmID string) ([]domain.Payment, error)

	// ListPaymentsByWorker retrieves all payments of one worker.
	ListPaymentsByWorker(ctx context.Context, workerID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data. Payments are
// insert-only.
type PaymentWriter interface {
	// SavePaymentInTx persists a new payment inside an existing transaction.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction
// capabilities.
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
