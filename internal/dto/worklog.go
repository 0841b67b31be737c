package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// CreateWorkLogRequest defines the data needed to record a day's work.
// AmountEarned is optional; when omitted it is derived from the configured
// price per kg.
type CreateWorkLogRequest struct {
	WorkerID     string           `json:"workerID" binding:"required"`
	Date         time.Time        `json:"date" binding:"required"`
	KgsProcessed float64          `json:"kgsProcessed" binding:"required,gt=0"`
	AmountEarned *decimal.Decimal `json:"amountEarned"`
}

// WorkLogResponse defines the data returned for a work log.
type WorkLogResponse struct {
	WorkLogID    string          `json:"workLogID"`
	WorkerID     string          `json:"workerID"`
	FirmID       string          `json:"firmID"`
	Date         time.Time       `json:"date"`
	KgsProcessed float64         `json:"kgsProcessed"`
	AmountEarned decimal.Decimal `json:"amountEarned"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToWorkLogResponse converts a domain.WorkLog to WorkLogResponse DTO
func ToWorkLogResponse(log *domain.WorkLog) WorkLogResponse {
	return WorkLogResponse{
		WorkLogID:    log.WorkLogID,
		WorkerID:     log.WorkerID,
		FirmID:       log.FirmID,
		Date:         log.Date,
		KgsProcessed: log.KgsProcessed,
		AmountEarned: log.AmountEarned,
		CreatedAt:    log.CreatedAt,
	}
}

// ListWorkLogsResponse wraps the list of work logs.
type ListWorkLogsResponse struct {
	WorkLogs []WorkLogResponse `json:"workLogs"`
}

// ToListWorkLogsResponse converts a slice of domain.WorkLog to ListWorkLogsResponse DTO
func ToListWorkLogsResponse(logs []domain.WorkLog) ListWorkLogsResponse {
	res := make([]WorkLogResponse, len(logs))
	for i, log := range logs {
		res[i] = ToWorkLogResponse(&log)
	}
	return ListWorkLogsResponse{WorkLogs: res}
}
