package domain

import "github.com/shopspring/decimal"

// Worker represents a person processing cashews for one firm.
//
// TotalKgsProcessed, TotalAmount, AdvanceAmount and PayoutsMade are running
// totals maintained in the same database transaction as the work-log or
// payment insert that changes them. They are authoritative counters, not
// values recomputed from the event history on read.
type Worker struct {
	WorkerID          string          `json:"workerID"` // Primary Key (e.g., UUID)
	FirmID            string          `json:"firmID"`   // FK -> firms.firm_id
	Name              string          `json:"name"`
	Phone             *string         `json:"phone"`             // Optional phone number
	Avatar            *string         `json:"avatar"`            // Optional avatar image reference
	TotalKgsProcessed float64         `json:"totalKgsProcessed"` // Cumulative kg, never decreases
	TotalAmount       decimal.Decimal `json:"totalAmount"`       // Cumulative gross earnings
	AdvanceAmount     decimal.Decimal `json:"advanceAmount"`     // Outstanding advance balance
	PayoutsMade       decimal.Decimal `json:"payoutsMade"`       // Cumulative payouts
	AuditFields
}

// WorkerCounterDeltas describes a single adjustment to a worker's running
// counters. Zero-valued fields leave the corresponding counter untouched.
type WorkerCounterDeltas struct {
	KgsProcessed float64
	Amount       decimal.Decimal
	Advance      decimal.Decimal
	Payouts      decimal.Decimal
}
