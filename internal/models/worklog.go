package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkLog is the database shape of a unit-of-work record.
type WorkLog struct {
	WorkLogID    string          `db:"work_log_id"`
	WorkerID     string          `db:"worker_id"`
	FirmID       string          `db:"firm_id"`
	Date         time.Time       `db:"log_date"`
	KgsProcessed float64         `db:"kgs_processed"`
	AmountEarned decimal.Decimal `db:"amount_earned"`
	AuditFields
}
