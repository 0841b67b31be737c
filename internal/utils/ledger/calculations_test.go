package ledger

import (
	"testing"
	"time"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testWorker(id, firmID string, totalAmount int64) domain.Worker {
	return domain.Worker{
		WorkerID:    id,
		FirmID:      firmID,
		Name:        "Worker " + id,
		TotalAmount: dec(totalAmount),
	}
}

func testPayment(workerID, firmID string, amount int64, typ domain.PaymentType) domain.Payment {
	return domain.Payment{
		PaymentID: workerID + "-" + string(typ),
		WorkerID:  workerID,
		FirmID:    firmID,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:    dec(amount),
		Type:      typ,
	}
}

func TestPendingPayableNoPayments(t *testing.T) {
	// With no payment history, everything earned is still payable.
	w := testWorker("w1", "f1", 1000)
	assert.True(t, PendingPayable(w, nil).Equal(dec(1000)))
	assert.True(t, PendingPayable(w, []domain.Payment{}).Equal(dec(1000)))
}

func TestPendingPayableConcreteScenario(t *testing.T) {
	// totalAmount=1000; advance 300, clear_advance 100, payout 200
	// => netAdvances=200, pending = 1000 - 200 - 200 = 600
	w := testWorker("w1", "f1", 1000)
	payments := []domain.Payment{
		testPayment("w1", "f1", 300, domain.PaymentAdvance),
		testPayment("w1", "f1", 100, domain.PaymentClearAdvance),
		testPayment("w1", "f1", 200, domain.PaymentPayout),
	}

	b := PaymentBreakdown("w1", payments)
	assert.True(t, b.AdvancesGiven.Equal(dec(300)), "advances given")
	assert.True(t, b.AdvancesCleared.Equal(dec(100)), "advances cleared")
	assert.True(t, b.NetAdvances.Equal(dec(200)), "net advances")
	assert.True(t, b.PayoutsMade.Equal(dec(200)), "payouts made")

	assert.True(t, PendingPayable(w, payments).Equal(dec(600)))
}

func TestPendingPayableFiltersByWorker(t *testing.T) {
	// Payments of other workers must never leak into the sum, even when the
	// caller passes an over-fetched set.
	w := testWorker("w1", "f1", 500)
	payments := []domain.Payment{
		testPayment("w1", "f1", 100, domain.PaymentPayout),
		testPayment("w2", "f1", 9999, domain.PaymentAdvance),
		testPayment("w3", "f2", 9999, domain.PaymentPayout),
	}
	assert.True(t, PendingPayable(w, payments).Equal(dec(400)))
}

func TestPendingPayableMayGoNegative(t *testing.T) {
	w := testWorker("w1", "f1", 100)
	payments := []domain.Payment{
		testPayment("w1", "f1", 250, domain.PaymentAdvance),
	}
	assert.True(t, PendingPayable(w, payments).Equal(dec(-150)), "over-advance is representable, not an error")
}

func TestPendingPayableMissingAmountTreatedAsZero(t *testing.T) {
	w := testWorker("w1", "f1", 100)
	// A payment decoded without an amount carries the decimal zero value.
	payments := []domain.Payment{
		{PaymentID: "p1", WorkerID: "w1", FirmID: "f1", Type: domain.PaymentPayout},
		testPayment("w1", "f1", 30, domain.PaymentPayout),
	}
	assert.True(t, PendingPayable(w, payments).Equal(dec(70)))
}

func TestPaymentBreakdownLinearInAmount(t *testing.T) {
	payments := []domain.Payment{
		testPayment("w1", "f1", 300, domain.PaymentAdvance),
		testPayment("w1", "f1", 100, domain.PaymentClearAdvance),
		testPayment("w1", "f1", 200, domain.PaymentPayout),
	}
	scaled := make([]domain.Payment, len(payments))
	k := dec(7)
	for i, p := range payments {
		p.Amount = p.Amount.Mul(k)
		scaled[i] = p
	}

	base := PaymentBreakdown("w1", payments)
	got := PaymentBreakdown("w1", scaled)
	assert.True(t, got.AdvancesGiven.Equal(base.AdvancesGiven.Mul(k)))
	assert.True(t, got.AdvancesCleared.Equal(base.AdvancesCleared.Mul(k)))
	assert.True(t, got.NetAdvances.Equal(base.NetAdvances.Mul(k)))
	assert.True(t, got.PayoutsMade.Equal(base.PayoutsMade.Mul(k)))
}

func TestEqualAdvanceAndClearanceCancel(t *testing.T) {
	payments := []domain.Payment{
		testPayment("w1", "f1", 150, domain.PaymentAdvance),
		{PaymentID: "p2", WorkerID: "w1", FirmID: "f1", Amount: dec(100), Type: domain.PaymentClearAdvance},
		{PaymentID: "p3", WorkerID: "w1", FirmID: "f1", Amount: dec(50), Type: domain.PaymentClearAdvance},
	}
	b := PaymentBreakdown("w1", payments)
	assert.True(t, b.NetAdvances.IsZero(), "equal advances and clearances must net to zero")
}

func TestFirmTotalsEmptyInputs(t *testing.T) {
	totals := FirmTotals(nil, nil, nil, "f1")
	assert.Equal(t, 0, totals.TotalWorkers)
	assert.Equal(t, 0.0, totals.TotalProcessedKg)
	assert.True(t, totals.TotalPayable.IsZero())
	assert.True(t, totals.TotalAdvancesGiven.IsZero())
}

func TestFirmTotalsScopesByFirm(t *testing.T) {
	workers := []domain.Worker{
		testWorker("w1", "f1", 1000),
		testWorker("w2", "f1", 500),
		testWorker("w3", "f2", 9000),
	}
	workLogs := []domain.WorkLog{
		{WorkLogID: "l1", WorkerID: "w1", FirmID: "f1", KgsProcessed: 12.5},
		{WorkLogID: "l2", WorkerID: "w2", FirmID: "f1", KgsProcessed: 7.5},
		{WorkLogID: "l3", WorkerID: "w3", FirmID: "f2", KgsProcessed: 99},
	}
	payments := []domain.Payment{
		testPayment("w1", "f1", 300, domain.PaymentAdvance),
		testPayment("w2", "f1", 200, domain.PaymentPayout),
		testPayment("w3", "f2", 5000, domain.PaymentAdvance),
	}

	totals := FirmTotals(workers, workLogs, payments, "f1")
	assert.Equal(t, 2, totals.TotalWorkers)
	assert.Equal(t, 20.0, totals.TotalProcessedKg)
	// w1: 1000-300 = 700, w2: 500-200 = 300
	assert.True(t, totals.TotalPayable.Equal(dec(1000)))
	assert.True(t, totals.TotalAdvancesGiven.Equal(dec(300)))
}

func TestMonthlyWorkerRows(t *testing.T) {
	monthStart, monthEnd := MonthBounds(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))

	workers := []domain.Worker{
		testWorker("w1", "f1", 1000),
		testWorker("w2", "f1", 400),
	}
	workLogs := []domain.WorkLog{
		// In the month window.
		{WorkLogID: "l1", WorkerID: "w1", FirmID: "f1", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), KgsProcessed: 10},
		{WorkLogID: "l2", WorkerID: "w1", FirmID: "f1", Date: time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC), KgsProcessed: 5},
		// Outside the window: must not count towards the month's kg.
		{WorkLogID: "l3", WorkerID: "w1", FirmID: "f1", Date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), KgsProcessed: 100},
		{WorkLogID: "l4", WorkerID: "w1", FirmID: "f1", Date: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), KgsProcessed: 100},
	}
	payments := []domain.Payment{
		// Dated before the month on purpose: advances are lifetime-to-date.
		{PaymentID: "p1", WorkerID: "w1", FirmID: "f1", Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Amount: dec(300), Type: domain.PaymentAdvance},
		{PaymentID: "p2", WorkerID: "w1", FirmID: "f1", Date: time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), Amount: dec(100), Type: domain.PaymentClearAdvance},
		{PaymentID: "p3", WorkerID: "w1", FirmID: "f1", Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), Amount: dec(200), Type: domain.PaymentPayout},
	}

	rows := MonthlyWorkerRows(workers, workLogs, payments, "f1", monthStart, monthEnd)
	require.Len(t, rows, 2)

	// Insertion order of the worker collection is preserved.
	assert.Equal(t, "Worker w1", rows[0].WorkerName)
	assert.Equal(t, "Worker w2", rows[1].WorkerName)

	assert.Equal(t, "01/03/25", rows[0].Date)
	assert.Equal(t, 15.0, rows[0].KgsProcessed, "only logs within the month count")
	assert.True(t, rows[0].AdvancesGiven.Equal(dec(300)), "advances are not month-scoped")
	assert.True(t, rows[0].NetAdvances.Equal(dec(200)))
	assert.True(t, rows[0].TotalAmountEarned.Equal(dec(1000)))
	assert.True(t, rows[0].PendingPayable.Equal(dec(600)))

	assert.Equal(t, 0.0, rows[1].KgsProcessed)
	assert.True(t, rows[1].PendingPayable.Equal(dec(400)))
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2025, 2, 14, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Month(2), end.Month())
	assert.Equal(t, 28, end.Day())
}
