package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// WorkLogReader defines read operations for work-log data.
type WorkLogReader interface {
	// ListWorkLogsByFirm retrieves all work logs of a firm in creation order.
	ListWorkLogsByFirm(ctx context.Context, firmID string) ([]domain.WorkLog, error)

	// ListWorkLogsByWorker retrieves all work logs of one worker.
	ListWorkLogsByWorker(ctx context.Context, workerID string) ([]domain.WorkLog, error)
}

// WorkLogWriter defines write operations for work-log data. Work logs are
// insert-only; there is no update or delete.
type WorkLogWriter interface {
	// SaveWorkLogInTx persists a new work log inside an existing transaction.
	SaveWorkLogInTx(ctx context.Context, tx pgx.Tx, log domain.WorkLog) error
}

// WorkLogRepositoryFacade combines all work-log repository interfaces.
type WorkLogRepositoryFacade interface {
	WorkLogReader
	WorkLogWriter
}

// WorkLogRepositoryWithTx extends WorkLogRepositoryFacade with transaction
// capabilities.
type WorkLogRepositoryWithTx interface {
	WorkLogRepositoryFacade
	TransactionManager
}
