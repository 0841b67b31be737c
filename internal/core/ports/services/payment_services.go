package services

import (
	"context"
	"time"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentParams carries the inputs for a new payment.
type RecordPaymentParams struct {
	WorkerID string
	Date     time.Time
	Amount   decimal.Decimal
	Type     domain.PaymentType
}

// PaymentSvcFacade defines the operations on payments.
type PaymentSvcFacade interface {
	// RecordPayment persists a payment and adjusts the worker's advance or
	// payout counter in the same transaction, dispatched on the payment type.
	RecordPayment(ctx context.Context, firmID string, params RecordPaymentParams, creatorUserID string) (*domain.Payment, error)

	// ClearAdvance records a clear_advance payment for the worker's full
	// outstanding advance balance and zeroes the balance.
	ClearAdvance(ctx context.Context, firmID, workerID string, creatorUserID string) (*domain.Payment, error)

	// ListPayments retrieves all payments of a firm.
	ListPayments(ctx context.Context, firmID string) ([]domain.Payment, error)

	// ListWorkerPayments retrieves all payments of one worker.
	ListWorkerPayments(ctx context.Context, workerID string) ([]domain.Payment, error)
}
