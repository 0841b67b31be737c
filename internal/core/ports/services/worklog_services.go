package services

import (
	"context"
	"time"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkLogParams carries the inputs for a new work log. When
// AmountEarned is nil the service derives it from the configured price per
// kilogram at entry time.
type CreateWorkLogParams struct {
	WorkerID     string
	Date         time.Time
	KgsProcessed float64
	AmountEarned *decimal.Decimal
}

// WorkLogSvcFacade defines the operations on work logs.
type WorkLogSvcFacade interface {
	// CreateWorkLog persists a new work log and bumps the worker's
	// TotalKgsProcessed and TotalAmount counters in the same transaction.
	CreateWorkLog(ctx context.Context, firmID string, params CreateWorkLogParams, creatorUserID string) (*domain.WorkLog, error)

	// ListWorkLogs retrieves all work logs of a firm.
	ListWorkLogs(ctx context.Context, firmID string) ([]domain.WorkLog, error)

	// ListWorkerWorkLogs retrieves all work logs of one worker.
	ListWorkerWorkLogs(ctx context.Context, workerID string) ([]domain.WorkLog, error)
}
