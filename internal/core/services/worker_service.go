package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
)

// workerService implements the WorkerSvcFacade interface.
type workerService struct {
	BaseService
	workerRepo portsrepo.WorkerRepositoryWithTx
	firmRepo   portsrepo.FirmRepositoryFacade
}

// NewWorkerService creates a new worker service.
func NewWorkerService(workerRepo portsrepo.WorkerRepositoryWithTx, firmRepo portsrepo.FirmRepositoryFacade) portssvc.WorkerSvcFacade {
	return &workerService{workerRepo: workerRepo, firmRepo: firmRepo}
}

var _ portssvc.WorkerSvcFacade = (*workerService)(nil)

// CreateWorker registers a new worker under a firm with zeroed counters.
func (s *workerService) CreateWorker(ctx context.Context, firmID, name string, phone, avatar *string, creatorUserID string) (*domain.Worker, error) {
	if _, err := s.firmRepo.FindFirmByID(ctx, firmID); err != nil {
		return nil, err
	}

	now := time.Now()
	worker := domain.Worker{
		WorkerID:          uuid.NewString(),
		FirmID:            firmID,
		Name:              name,
		Phone:             phone,
		Avatar:            avatar,
		TotalKgsProcessed: 0,
		TotalAmount:       decimal.Zero,
		AdvanceAmount:     decimal.Zero,
		PayoutsMade:       decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.workerRepo.SaveWorker(ctx, worker); err != nil {
		s.LogError(ctx, err, "Failed to save worker", slog.String("firm_id", firmID))
		return nil, err
	}

	s.LogInfo(ctx, "Worker created", slog.String("worker_id", worker.WorkerID), slog.String("firm_id", firmID))
	return &worker, nil
}

// ListWorkers returns all workers of a firm ordered by creation time.
func (s *workerService) ListWorkers(ctx context.Context, firmID string) ([]domain.Worker, error) {
	workers, err := s.workerRepo.ListWorkersByFirm(ctx, firmID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workers", slog.String("firm_id", firmID))
		return nil, err
	}
	return workers, nil
}

// FindWorkerByID retrieves a worker by ID.
func (s *workerService) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find worker", slog.String("worker_id", workerID))
		}
		return nil, err
	}
	return worker, nil
}

// UpdateWorkerProfile updates the identity fields of a worker. Counters are
// never touched here.
func (s *workerService) UpdateWorkerProfile(ctx context.Context, workerID string, params portssvc.UpdateWorkerProfileParams, updaterUserID string) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		worker.Name = *params.Name
	}
	if params.Phone != nil {
		worker.Phone = params.Phone
	}
	if params.Avatar != nil {
		worker.Avatar = params.Avatar
	}
	worker.LastUpdatedAt = time.Now()
	worker.LastUpdatedBy = updaterUserID

	if err := s.workerRepo.UpdateWorkerProfile(ctx, *worker); err != nil {
		s.LogError(ctx, err, "Failed to update worker profile", slog.String("worker_id", workerID))
		return nil, err
	}
	return worker, nil
}
