package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
)

// workLogService implements the WorkLogSvcFacade interface.
type workLogService struct {
	BaseService
	workLogRepo  portsrepo.WorkLogRepositoryWithTx
	workerRepo   portsrepo.WorkerRepositoryWithTx
	settingsRepo portsrepo.SettingsRepositoryFacade
	txManager    portsrepo.TransactionManager
}

// NewWorkLogService creates a new work log service.
func NewWorkLogService(
	workLogRepo portsrepo.WorkLogRepositoryWithTx,
	workerRepo portsrepo.WorkerRepositoryWithTx,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	txManager portsrepo.TransactionManager,
) portssvc.WorkLogSvcFacade {
	return &workLogService{
		workLogRepo:  workLogRepo,
		workerRepo:   workerRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
	}
}

var _ portssvc.WorkLogSvcFacade = (*workLogService)(nil)

// CreateWorkLog records a day's processing for a worker. The log row and the
// worker's counters are written in a single transaction so the cached totals
// can never drift from the event history.
func (s *workLogService) CreateWorkLog(ctx context.Context, firmID string, params portssvc.CreateWorkLogParams, creatorUserID string) (*domain.WorkLog, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, params.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker.FirmID != firmID {
		return nil, apperrors.ErrNotFound
	}
	if params.KgsProcessed <= 0 {
		return nil, fmt.Errorf("%w: kgsProcessed must be positive", apperrors.ErrValidation)
	}

	amount, err := s.resolveAmount(ctx, params)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	workLog := domain.WorkLog{
		WorkLogID:    uuid.NewString(),
		FirmID:       firmID,
		WorkerID:     params.WorkerID,
		Date:         params.Date,
		KgsProcessed: params.KgsProcessed,
		AmountEarned: amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	if err := s.workLogRepo.SaveWorkLogInTx(ctx, tx, workLog); err != nil {
		s.LogError(ctx, err, "Failed to save work log", slog.String("worker_id", params.WorkerID))
		return nil, err
	}

	deltas := domain.WorkerCounterDeltas{
		KgsProcessed: workLog.KgsProcessed,
		Amount:       workLog.AmountEarned,
	}
	if err := s.workerRepo.ApplyCounterDeltasInTx(ctx, tx, params.WorkerID, deltas, creatorUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to update worker counters", slog.String("worker_id", params.WorkerID))
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit work log transaction")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.LogInfo(ctx, "Work log created",
		slog.String("work_log_id", workLog.WorkLogID),
		slog.String("worker_id", params.WorkerID))
	return &workLog, nil
}

// resolveAmount uses the explicit amount when given, otherwise derives it
// from the configured price per kg.
func (s *workLogService) resolveAmount(ctx context.Context, params portssvc.CreateWorkLogParams) (decimal.Decimal, error) {
	if params.AmountEarned != nil {
		if params.AmountEarned.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: amountEarned cannot be negative", apperrors.ErrValidation)
		}
		return *params.AmountEarned, nil
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for amount derivation")
		return decimal.Zero, err
	}
	kgs := decimal.NewFromFloat(params.KgsProcessed)
	return settings.PricePerKg.Mul(kgs), nil
}

// ListWorkLogs returns all work logs of a firm, newest first.
func (s *workLogService) ListWorkLogs(ctx context.Context, firmID string) ([]domain.WorkLog, error) {
	logs, err := s.workLogRepo.ListWorkLogsByFirm(ctx, firmID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list work logs", slog.String("firm_id", firmID))
		return nil, err
	}
	return logs, nil
}

// ListWorkerWorkLogs returns all work logs of a single worker, newest first.
func (s *workLogService) ListWorkerWorkLogs(ctx context.Context, workerID string) ([]domain.WorkLog, error) {
	logs, err := s.workLogRepo.ListWorkLogsByWorker(ctx, workerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list worker work logs", slog.String("worker_id", workerID))
		return nil, err
	}
	return logs, nil
}
