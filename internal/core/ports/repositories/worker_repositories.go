package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// WorkerReader defines read operations for worker data.
type WorkerReader interface {
	// FindWorkerByID retrieves a specific worker by ID.
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// FindWorkerByName retrieves a worker by exact name within a firm.
	// Used by the spreadsheet import to resolve rows to existing workers.
	FindWorkerByName(ctx context.Context, firmID, name string) (*domain.Worker, error)

	// ListWorkersByFirm retrieves all workers of a firm in creation order.
	ListWorkersByFirm(ctx context.Context, firmID string) ([]domain.Worker, error)
}

// WorkerWriter defines write operations for worker data.
type WorkerWriter interface {
	// SaveWorker persists a new worker.
	SaveWorker(ctx context.Context, worker domain.Worker) error

	// SaveWorkerInTx persists a new worker inside an existing transaction.
	SaveWorkerInTx(ctx context.Context, tx pgx.Tx, worker domain.Worker) error

	// UpdateWorkerProfile updates name, phone and avatar. Counters are never
	// written through this method.
	UpdateWorkerProfile(ctx context.Context, worker domain.Worker) error

	// ApplyCounterDeltasInTx adds the given deltas to a worker's running
	// counters inside an existing transaction, so the counters can only move
	// together with the event row that justifies them.
	ApplyCounterDeltasInTx(ctx context.Context, tx pgx.Tx, workerID string, deltas domain.WorkerCounterDeltas, updatedBy string, now time.Time) error
}

// WorkerRepositoryFacade combines all worker-related repository interfaces.
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}

// WorkerRepositoryWithTx extends WorkerRepositoryFacade with transaction
// capabilities.
type WorkerRepositoryWithTx interface {
	WorkerRepositoryFacade
	TransactionManager
}
