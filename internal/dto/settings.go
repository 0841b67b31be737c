package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// UpdateSettingsRequest defines the settings fields allowed for update.
// Pointers distinguish omitted fields from zero values.
type UpdateSettingsRequest struct {
	PricePerKg *decimal.Decimal `json:"pricePerKg"`
	Currency   *string          `json:"currency" binding:"omitempty,max=10"`
	Theme      *domain.Theme    `json:"theme" binding:"omitempty,oneof=light dark"`
}

// SettingsResponse defines the data returned for the app settings.
type SettingsResponse struct {
	PricePerKg decimal.Decimal `json:"pricePerKg"`
	Currency   string          `json:"currency"`
	Theme      domain.Theme    `json:"theme"`
}

// ToSettingsResponse converts a domain.AppSettings to SettingsResponse DTO
func ToSettingsResponse(settings *domain.AppSettings) SettingsResponse {
	return SettingsResponse{
		PricePerKg: settings.PricePerKg,
		Currency:   settings.Currency,
		Theme:      settings.Theme,
	}
}
