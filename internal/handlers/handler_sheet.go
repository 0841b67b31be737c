package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
	"github.com/kajuworks/cashew_track_app/internal/dto"
	"github.com/kajuworks/cashew_track_app/internal/middleware"
)

// sheetHandler handles spreadsheet import and export requests.
type sheetHandler struct {
	sheetService portssvc.SheetSvcFacade
}

// newSheetHandler creates a new sheetHandler.
func newSheetHandler(ss portssvc.SheetSvcFacade) *sheetHandler {
	return &sheetHandler{sheetService: ss}
}

// registerSheetRoutes registers import/export routes nested under a firm.
func registerSheetRoutes(rg *gin.RouterGroup, ss portssvc.SheetSvcFacade) {
	h := newSheetHandler(ss)

	rg.POST("/import", h.importSheet)
	rg.GET("/reports/monthly/export", h.exportSheet)
}

// importSheet accepts an uploaded xlsx workbook and applies it to the firm.
func (h *sheetHandler) importSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file in multipart form"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	summary, err := h.sheetService.ImportMonthlyLogs(c.Request.Context(), firmID, file, actorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Firm not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to import sheet", slog.String("error", err.Error()), slog.String("firm_id", firmID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import sheet"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ImportSummaryResponse{ImportSummary: *summary})
}

// exportSheet renders the monthly report of a firm as an xlsx download.
func (h *sheetHandler) exportSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	month, ok := parseMonthParam(c)
	if !ok {
		return
	}

	file, err := h.sheetService.ExportMonthlyLogs(c.Request.Context(), firmID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Firm not found"})
			return
		}
		logger.Error("Failed to export sheet", slog.String("error", err.Error()), slog.String("firm_id", firmID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export sheet"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
