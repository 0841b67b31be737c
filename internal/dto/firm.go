package dto

import (
	"time"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// CreateFirmRequest defines the data needed to create a new firm.
type CreateFirmRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Location *string `json:"location"` // Optional
}

// FirmResponse defines the data returned for a firm.
type FirmResponse struct {
	FirmID    string    `json:"firmID"`
	Name      string    `json:"name"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToFirmResponse converts a domain.Firm to FirmResponse DTO
func ToFirmResponse(firm *domain.Firm) FirmResponse {
	return FirmResponse{
		FirmID:    firm.FirmID,
		Name:      firm.Name,
		Location:  firm.Location,
		CreatedAt: firm.CreatedAt,
		CreatedBy: firm.CreatedBy,
	}
}

// ListFirmsResponse wraps the list of firms.
type ListFirmsResponse struct {
	Firms []FirmResponse `json:"firms"`
}

// ToListFirmsResponse converts a slice of domain.Firm to ListFirmsResponse DTO
func ToListFirmsResponse(firms []domain.Firm) ListFirmsResponse {
	res := make([]FirmResponse, len(firms))
	for i, firm := range firms {
		res[i] = ToFirmResponse(&firm)
	}
	return ListFirmsResponse{Firms: res}
}
