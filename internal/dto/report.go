package dto

import (
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// FirmTotalsResponse defines the dashboard summary for one firm.
type FirmTotalsResponse struct {
	domain.FirmTotals
}

// MonthlyReportResponse wraps the per-worker monthly report rows.
type MonthlyReportResponse struct {
	Month string                   `json:"month"` // YYYY-MM
	Rows  []domain.MonthlyWorkerRow `json:"rows"`
}

// ImportSummaryResponse wraps the structured report of a sheet import.
type ImportSummaryResponse struct {
	domain.ImportSummary
}
