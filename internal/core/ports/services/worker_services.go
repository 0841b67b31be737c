package services

import (
	"context"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// UpdateWorkerProfileParams carries the optional profile fields of a worker
// update. Nil fields are left unchanged. Counters cannot be updated here.
type UpdateWorkerProfileParams struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// WorkerSvcFacade defines the operations on workers.
type WorkerSvcFacade interface {
	// CreateWorker persists a new worker with zeroed counters.
	CreateWorker(ctx context.Context, firmID, name string, phone, avatar *string, creatorUserID string) (*domain.Worker, error)

	// ListWorkers retrieves all workers of a firm in creation order.
	ListWorkers(ctx context.Context, firmID string) ([]domain.Worker, error)

	// FindWorkerByID retrieves a specific worker.
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// UpdateWorkerProfile updates a worker's profile fields.
	UpdateWorkerProfile(ctx context.Context, workerID string, params UpdateWorkerProfileParams, updaterUserID string) (*domain.Worker, error)
}
