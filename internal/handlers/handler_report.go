package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
	"github.com/kajuworks/cashew_track_app/internal/dto"
	"github.com/kajuworks/cashew_track_app/internal/middleware"
)

// reportHandler handles HTTP requests for derived financial reports.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// registerReportRoutes registers report routes nested under a firm.
func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/totals", h.getFirmTotals)
		reports.GET("/monthly", h.getMonthlyReport)
	}
}

// getFirmTotals returns the firm-wide dashboard figures.
func (h *reportHandler) getFirmTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	totals, err := h.reportingService.FirmTotals(c.Request.Context(), firmID)
	if err != nil {
		logger.Error("Failed to compute firm totals", slog.String("error", err.Error()), slog.String("firm_id", firmID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute firm totals"})
		return
	}
	c.JSON(http.StatusOK, dto.FirmTotalsResponse{FirmTotals: *totals})
}

// getMonthlyReport returns the per-worker rows for the requested month.
// The month query parameter uses the YYYY-MM form and defaults to the
// current month.
func (h *reportHandler) getMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	month, ok := parseMonthParam(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.MonthlyWorkerRows(c.Request.Context(), firmID, month)
	if err != nil {
		logger.Error("Failed to compute monthly report", slog.String("error", err.Error()), slog.String("firm_id", firmID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly report"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyReportResponse{
		Month: month.Format("2006-01"),
		Rows:  rows,
	})
}

// parseMonthParam reads the month query parameter. It writes the error
// response itself when the value is malformed.
func parseMonthParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now(), true
	}
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format, expected YYYY-MM"})
		return time.Time{}, false
	}
	return month, true
}
