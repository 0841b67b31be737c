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

// firmHandler handles HTTP requests related to firms.
type firmHandler struct {
	firmService portssvc.FirmSvcFacade
}

// newFirmHandler creates a new firmHandler.
func newFirmHandler(fs portssvc.FirmSvcFacade) *firmHandler {
	return &firmHandler{firmService: fs}
}

// createFirm creates a new processing firm.
func (h *firmHandler) createFirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createFirm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	newFirm, err := h.firmService.CreateFirm(c.Request.Context(), req.Name, req.Location, creatorUserID)
	if err != nil {
		logger.Error("Failed to create firm in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create firm"})
		return
	}

	logger.Info("Firm created successfully", slog.String("firm_id", newFirm.FirmID))
	c.JSON(http.StatusCreated, dto.ToFirmResponse(newFirm))
}

// listFirms returns all firms.
func (h *firmHandler) listFirms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firms, err := h.firmService.ListFirms(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list firms", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list firms"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListFirmsResponse(firms))
}

// getFirm returns a single firm by ID.
func (h *firmHandler) getFirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	firm, err := h.firmService.FindFirmByID(c.Request.Context(), firmID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Firm not found"})
			return
		}
		logger.Error("Failed to get firm", slog.String("error", err.Error()), slog.String("firm_id", firmID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get firm"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFirmResponse(firm))
}
