package services

import (
	"context"
	"time"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade derives the financial views rendered on the dashboard.
// Every method recomputes from fresh snapshots; nothing is cached.
type ReportingSvcFacade interface {
	// FirmTotals derives the summary figures for one firm.
	FirmTotals(ctx context.Context, firmID string) (*domain.FirmTotals, error)

	// MonthlyWorkerRows derives per-worker rows for the calendar month
	// containing month.
	MonthlyWorkerRows(ctx context.Context, firmID string, month time.Time) ([]domain.MonthlyWorkerRow, error)

	// PendingPayable derives the signed outstanding balance for one worker.
	PendingPayable(ctx context.Context, workerID string) (decimal.Decimal, error)
}
