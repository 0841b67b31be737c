package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a money movement.
type CreatePaymentRequest struct {
	WorkerID string             `json:"workerID" binding:"required"`
	Date     time.Time          `json:"date" binding:"required"`
	Amount   decimal.Decimal    `json:"amount" binding:"required"`
	Type     domain.PaymentType `json:"type" binding:"required,oneof=advance payout clear_advance"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID string             `json:"paymentID"`
	WorkerID  string             `json:"workerID"`
	FirmID    string             `json:"firmID"`
	Date      time.Time          `json:"date"`
	Amount    decimal.Decimal    `json:"amount"`
	Type      domain.PaymentType `json:"type"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: payment.PaymentID,
		WorkerID:  payment.WorkerID,
		FirmID:    payment.FirmID,
		Date:      payment.Date,
		Amount:    payment.Amount,
		Type:      payment.Type,
		CreatedAt: payment.CreatedAt,
	}
}

// ListPaymentsResponse wraps the list of payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToListPaymentsResponse converts a slice of domain.Payment to ListPaymentsResponse DTO
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		res[i] = ToPaymentResponse(&payment)
	}
	return ListPaymentsResponse{Payments: res}
}
