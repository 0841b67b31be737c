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

// paymentService implements the PaymentSvcFacade interface.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryWithTx
	workerRepo  portsrepo.WorkerRepositoryWithTx
	txManager   portsrepo.TransactionManager
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryWithTx,
	workerRepo portsrepo.WorkerRepositoryWithTx,
	txManager portsrepo.TransactionManager,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		workerRepo:  workerRepo,
		txManager:   txManager,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment records a money movement for a worker. The payment row and the
// worker's counters are written in a single transaction.
func (s *paymentService) RecordPayment(ctx context.Context, firmID string, params portssvc.RecordPaymentParams, creatorUserID string) (*domain.Payment, error) {
	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", apperrors.ErrValidation, params.Type)
	}
	if !params.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, params.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker.FirmID != firmID {
		return nil, apperrors.ErrNotFound
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		FirmID:    firmID,
		WorkerID:  params.WorkerID,
		Date:      params.Date,
		Amount:    params.Amount,
		Type:      params.Type,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.savePaymentWithCounters(ctx, payment, counterDeltasFor(payment), creatorUserID, now); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("worker_id", params.WorkerID),
		slog.String("type", string(params.Type)))
	return &payment, nil
}

// ClearAdvance settles the worker's entire outstanding advance by recording a
// clearance event for the current advance balance.
func (s *paymentService) ClearAdvance(ctx context.Context, firmID, workerID, creatorUserID string) (*domain.Payment, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker.FirmID != firmID {
		return nil, apperrors.ErrNotFound
	}
	if !worker.AdvanceAmount.IsPositive() {
		return nil, fmt.Errorf("%w: worker has no outstanding advance", apperrors.ErrValidation)
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		FirmID:    firmID,
		WorkerID:  workerID,
		Date:      now,
		Amount:    worker.AdvanceAmount,
		Type:      domain.PaymentClearAdvance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.savePaymentWithCounters(ctx, payment, counterDeltasFor(payment), creatorUserID, now); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Advance cleared",
		slog.String("payment_id", payment.PaymentID),
		slog.String("worker_id", workerID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

func (s *paymentService) savePaymentWithCounters(ctx context.Context, payment domain.Payment, deltas domain.WorkerCounterDeltas, actorUserID string, now time.Time) error {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	if err := s.paymentRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("worker_id", payment.WorkerID))
		return err
	}
	if err := s.workerRepo.ApplyCounterDeltasInTx(ctx, tx, payment.WorkerID, deltas, actorUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to update worker counters", slog.String("worker_id", payment.WorkerID))
		return err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit payment transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// counterDeltasFor maps a payment to the counter adjustments it implies.
func counterDeltasFor(payment domain.Payment) domain.WorkerCounterDeltas {
	deltas := domain.WorkerCounterDeltas{
		Amount:  decimal.Zero,
		Advance: decimal.Zero,
		Payouts: decimal.Zero,
	}
	switch payment.Type {
	case domain.PaymentAdvance:
		deltas.Advance = payment.Amount
	case domain.PaymentClearAdvance:
		deltas.Advance = payment.Amount.Neg()
	case domain.PaymentPayout:
		deltas.Payouts = payment.Amount
	}
	return deltas
}

// ListPayments returns all payments of a firm, newest first.
func (s *paymentService) ListPayments(ctx context.Context, firmID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByFirm(ctx, firmID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("firm_id", firmID))
		return nil, err
	}
	return payments, nil
}

// ListWorkerPayments returns all payments of a single worker, newest first.
func (s *paymentService) ListWorkerPayments(ctx context.Context, workerID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByWorker(ctx, workerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list worker payments", slog.String("worker_id", workerID))
		return nil, err
	}
	return payments, nil
}
