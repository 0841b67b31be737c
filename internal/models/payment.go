package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database shape of a financial transaction against a worker.
type Payment struct {
	PaymentID string          `db:"payment_id"`
	WorkerID  string          `db:"worker_id"`
	FirmID    string          `db:"firm_id"`
	Date      time.Time       `db:"payment_date"`
	Amount    decimal.Decimal `db:"amount"`
	Type      string          `db:"payment_type"`
	AuditFields
}
