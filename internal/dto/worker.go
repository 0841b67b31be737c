package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// CreateWorkerRequest defines the data needed to register a worker.
type CreateWorkerRequest struct {
	Name   string  `json:"name" binding:"required,max=100"`
	Phone  *string `json:"phone"`  // Optional
	Avatar *string `json:"avatar"` // Optional
}

// UpdateWorkerRequest defines the identity fields allowed for update.
// Counters are never writable through the API.
type UpdateWorkerRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

// WorkerResponse defines the data returned for a worker.
type WorkerResponse struct {
	WorkerID          string          `json:"workerID"`
	FirmID            string          `json:"firmID"`
	Name              string          `json:"name"`
	Phone             *string         `json:"phone,omitempty"`
	Avatar            *string         `json:"avatar,omitempty"`
	TotalKgsProcessed float64         `json:"totalKgsProcessed"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	AdvanceAmount     decimal.Decimal `json:"advanceAmount"`
	PayoutsMade       decimal.Decimal `json:"payoutsMade"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// WorkerDetailResponse extends WorkerResponse with the derived payable
// balance. The balance may be negative when a worker was overpaid.
type WorkerDetailResponse struct {
	WorkerResponse
	PendingPayable decimal.Decimal `json:"pendingPayable"`
}

// ToWorkerResponse converts a domain.Worker to WorkerResponse DTO
func ToWorkerResponse(worker *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:          worker.WorkerID,
		FirmID:            worker.FirmID,
		Name:              worker.Name,
		Phone:             worker.Phone,
		Avatar:            worker.Avatar,
		TotalKgsProcessed: worker.TotalKgsProcessed,
		TotalAmount:       worker.TotalAmount,
		AdvanceAmount:     worker.AdvanceAmount,
		PayoutsMade:       worker.PayoutsMade,
		CreatedAt:         worker.CreatedAt,
	}
}

// ListWorkersResponse wraps the list of workers.
type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

// ToListWorkersResponse converts a slice of domain.Worker to ListWorkersResponse DTO
func ToListWorkersResponse(workers []domain.Worker) ListWorkersResponse {
	res := make([]WorkerResponse, len(workers))
	for i, worker := range workers {
		res[i] = ToWorkerResponse(&worker)
	}
	return ListWorkersResponse{Workers: res}
}
