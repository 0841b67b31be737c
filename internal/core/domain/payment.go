package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType classifies a financial transaction against a worker.
type PaymentType string

const (
	// PaymentAdvance means the firm lends the worker money; it increases the
	// worker's outstanding advance balance.
	PaymentAdvance PaymentType = "advance"
	// PaymentPayout means the firm pays the worker from earnings; it does not
	// touch the advance balance but counts against pending payable.
	PaymentPayout PaymentType = "payout"
	// PaymentClearAdvance settles outstanding advance without a cash payout;
	// it decreases the advance balance.
	PaymentClearAdvance PaymentType = "clear_advance"
)

// Valid reports whether t is one of the known payment types.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentAdvance, PaymentPayout, PaymentClearAdvance:
		return true
	}
	return false
}

// Payment is a single financial transaction against a worker.
type Payment struct {
	PaymentID string          `json:"paymentID"` // Primary Key (e.g., UUID)
	WorkerID  string          `json:"workerID"`  // FK -> workers.worker_id
	FirmID    string          `json:"firmID"`    // FK -> firms.firm_id
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"` // Always >= 0; the type carries the direction
	Type      PaymentType     `json:"type"`
	AuditFields
}
