package domain

import "github.com/shopspring/decimal"

// FirmTotals is the summary rendered on the dashboard for one firm. It is
// recomputed from the current snapshots on every request, never cached.
type FirmTotals struct {
	TotalWorkers       int             `json:"totalWorkers"`
	TotalProcessedKg   float64         `json:"totalProcessedKg"`
	TotalPayable       decimal.Decimal `json:"totalPayable"`
	TotalAdvancesGiven decimal.Decimal `json:"totalAdvancesGiven"`
}

// MonthlyWorkerRow is one line of the monthly logs report. KgsProcessed is
// scoped to the report month; the advance and payout figures are
// lifetime-to-date running balances. That asymmetry is intentional: kg is an
// activity metric, the money columns are balances.
type MonthlyWorkerRow struct {
	Date              string          `json:"date"` // Month start, dd/MM/yy
	WorkerName        string          `json:"workerName"`
	KgsProcessed      float64         `json:"kgsProcessed"`
	AdvancesGiven     decimal.Decimal `json:"advancesGiven"`
	AdvancesCleared   decimal.Decimal `json:"advancesCleared"`
	NetAdvances       decimal.Decimal `json:"netAdvances"`
	TotalAmountEarned decimal.Decimal `json:"totalAmountEarned"`
	PayoutsMade       decimal.Decimal `json:"payoutsMade"`
	PendingPayable    decimal.Decimal `json:"pendingPayable"` // May be negative (overpayment)
}
