package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkLog is one unit-of-work record for a worker. Work logs are immutable
// once created; there are no update or delete operations on them.
type WorkLog struct {
	WorkLogID    string          `json:"workLogID"` // Primary Key (e.g., UUID)
	WorkerID     string          `json:"workerID"`  // FK -> workers.worker_id
	FirmID       string          `json:"firmID"`    // FK -> firms.firm_id
	Date         time.Time       `json:"date"`      // Day the work was done
	KgsProcessed float64         `json:"kgsProcessed"`
	AmountEarned decimal.Decimal `json:"amountEarned"` // Typically kg x price per kg at entry time
	AuditFields
}
