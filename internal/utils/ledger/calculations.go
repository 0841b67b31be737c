package ledger

import (
	"time"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Breakdown holds the per-worker payment aggregates every report is built
// from. NetAdvances and the pending payable derived from it may be negative;
// over-advance and overpayment are representable states, not errors.
type Breakdown struct {
	AdvancesGiven   decimal.Decimal
	AdvancesCleared decimal.Decimal
	NetAdvances     decimal.Decimal
	PayoutsMade     decimal.Decimal
}

// PaymentBreakdown sums the payment history for one worker by type.
// Payments belonging to other workers are ignored, so callers may pass an
// over-fetched set. The zero value of decimal.Decimal is zero, so payments
// with an absent amount contribute nothing rather than poisoning the sum.
func PaymentBreakdown(workerID string, payments []domain.Payment) Breakdown {
	b := Breakdown{
		AdvancesGiven:   decimal.Zero,
		AdvancesCleared: decimal.Zero,
		PayoutsMade:     decimal.Zero,
	}
	for _, p := range payments {
		if p.WorkerID != workerID {
			continue
		}
		switch p.Type {
		case domain.PaymentAdvance:
			b.AdvancesGiven = b.AdvancesGiven.Add(p.Amount)
		case domain.PaymentClearAdvance:
			b.AdvancesCleared = b.AdvancesCleared.Add(p.Amount)
		case domain.PaymentPayout:
			b.PayoutsMade = b.PayoutsMade.Add(p.Amount)
		}
	}
	b.NetAdvances = b.AdvancesGiven.Sub(b.AdvancesCleared)
	return b
}

// PendingPayable computes what the firm still owes a worker:
//
//	pending = totalAmount - (advancesGiven - advancesCleared) - payoutsMade
//
// The result is signed; a negative value means the worker has been paid or
// advanced more than they earned.
func PendingPayable(worker domain.Worker, payments []domain.Payment) decimal.Decimal {
	b := PaymentBreakdown(worker.WorkerID, payments)
	return worker.TotalAmount.Sub(b.NetAdvances).Sub(b.PayoutsMade)
}

// FirmTotals derives the dashboard summary for one firm. Every input
// collection is filtered to firmID before aggregation. Empty inputs yield
// all-zero totals.
func FirmTotals(workers []domain.Worker, workLogs []domain.WorkLog, payments []domain.Payment, firmID string) domain.FirmTotals {
	totals := domain.FirmTotals{
		TotalPayable:       decimal.Zero,
		TotalAdvancesGiven: decimal.Zero,
	}
	for _, log := range workLogs {
		if log.FirmID == firmID {
			totals.TotalProcessedKg += log.KgsProcessed
		}
	}
	for _, p := range payments {
		if p.FirmID == firmID && p.Type == domain.PaymentAdvance {
			totals.TotalAdvancesGiven = totals.TotalAdvancesGiven.Add(p.Amount)
		}
	}
	for _, w := range workers {
		if w.FirmID != firmID {
			continue
		}
		totals.TotalWorkers++
		totals.TotalPayable = totals.TotalPayable.Add(PendingPayable(w, payments))
	}
	return totals
}

// MonthlyWorkerRows builds one report row per in-scope worker, preserving the
// order of the input worker collection. KgsProcessed is restricted to work
// logs dated within [monthStart, monthEnd] inclusive; the advance and payout
// columns are lifetime-to-date, matching PaymentBreakdown.
func MonthlyWorkerRows(workers []domain.Worker, workLogs []domain.WorkLog, payments []domain.Payment, firmID string, monthStart, monthEnd time.Time) []domain.MonthlyWorkerRow {
	rows := make([]domain.MonthlyWorkerRow, 0, len(workers))
	for _, w := range workers {
		if w.FirmID != firmID {
			continue
		}

		var kgs float64
		for _, log := range workLogs {
			if log.WorkerID != w.WorkerID {
				continue
			}
			if log.Date.Before(monthStart) || log.Date.After(monthEnd) {
				continue
			}
			kgs += log.KgsProcessed
		}

		b := PaymentBreakdown(w.WorkerID, payments)
		earned := w.TotalAmount

		rows = append(rows, domain.MonthlyWorkerRow{
			Date:              monthStart.Format("02/01/06"),
			WorkerName:        w.Name,
			KgsProcessed:      kgs,
			AdvancesGiven:     b.AdvancesGiven,
			AdvancesCleared:   b.AdvancesCleared,
			NetAdvances:       b.NetAdvances,
			TotalAmountEarned: earned,
			PayoutsMade:       b.PayoutsMade,
			PendingPayable:    earned.Sub(b.PayoutsMade).Sub(b.NetAdvances),
		})
	}
	return rows
}

// MonthBounds returns the inclusive first and last instants of the calendar
// month containing t, in t's location.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
