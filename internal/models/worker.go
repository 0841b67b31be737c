package models

import "github.com/shopspring/decimal"

// Worker is the database shape of a worker row, counters included.
type Worker struct {
	WorkerID          string          `db:"worker_id"`
	FirmID            string          `db:"firm_id"`
	Name              string          `db:"name"`
	Phone             *string         `db:"phone"`
	Avatar            *string         `db:"avatar"`
	TotalKgsProcessed float64         `db:"total_kgs_processed"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	AdvanceAmount     decimal.Decimal `db:"advance_amount"`
	PayoutsMade       decimal.Decimal `db:"payouts_made"`
	AuditFields
}
