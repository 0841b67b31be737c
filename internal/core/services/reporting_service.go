package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
	"github.com/kajuworks/cashew_track_app/internal/utils/ledger"
)

// reportingService implements the ReportingSvcFacade interface. All figures
// are derived from the stored event history at read time.
type reportingService struct {
	BaseService
	workerRepo  portsrepo.WorkerRepositoryWithTx
	workLogRepo portsrepo.WorkLogRepositoryWithTx
	paymentRepo portsrepo.PaymentRepositoryWithTx
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	workerRepo portsrepo.WorkerRepositoryWithTx,
	workLogRepo portsrepo.WorkLogRepositoryWithTx,
	paymentRepo portsrepo.PaymentRepositoryWithTx,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		workerRepo:  workerRepo,
		workLogRepo: workLogRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// FirmTotals computes the firm-wide dashboard figures.
func (s *reportingService) FirmTotals(ctx context.Context, firmID string) (*domain.FirmTotals, error) {
	workers, workLogs, payments, err := s.loadFirmSnapshot(ctx, firmID)
	if err != nil {
		return nil, err
	}
	totals := ledger.FirmTotals(workers, workLogs, payments, firmID)
	return &totals, nil
}

// MonthlyWorkerRows computes the per-worker report rows for a given month.
func (s *reportingService) MonthlyWorkerRows(ctx context.Context, firmID string, month time.Time) ([]domain.MonthlyWorkerRow, error) {
	workers, workLogs, payments, err := s.loadFirmSnapshot(ctx, firmID)
	if err != nil {
		return nil, err
	}
	monthStart, monthEnd := ledger.MonthBounds(month)
	return ledger.MonthlyWorkerRows(workers, workLogs, payments, firmID, monthStart, monthEnd), nil
}

// PendingPayable computes the current payable balance of one worker from the
// full payment history.
func (s *reportingService) PendingPayable(ctx context.Context, workerID string) (decimal.Decimal, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return decimal.Zero, err
	}
	payments, err := s.paymentRepo.ListPaymentsByWorker(ctx, workerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for payable", slog.String("worker_id", workerID))
		return decimal.Zero, err
	}
	return ledger.PendingPayable(*worker, payments), nil
}

func (s *reportingService) loadFirmSnapshot(ctx context.Context, firmID string) ([]domain.Worker, []domain.WorkLog, []domain.Payment, error) {
	workers, err := s.workerRepo.ListWorkersByFirm(ctx, firmID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workers for report", slog.String("firm_id", firmID))
		return nil, nil, nil, err
	}
	workLogs, err := s.workLogRepo.ListWorkLogsByFirm(ctx, firmID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load work logs for report", slog.String("firm_id", firmID))
		return nil, nil, nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByFirm(ctx, firmID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for report", slog.String("firm_id", firmID))
		return nil, nil, nil, err
	}
	return workers, workLogs, payments, nil
}
