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

// workLogHandler handles HTTP requests related to work logs.
type workLogHandler struct {
	workLogService portssvc.WorkLogSvcFacade
}

// newWorkLogHandler creates a new workLogHandler.
func newWorkLogHandler(ws portssvc.WorkLogSvcFacade) *workLogHandler {
	return &workLogHandler{workLogService: ws}
}

// registerWorkLogRoutes registers work-log routes nested under a firm.
func registerWorkLogRoutes(rg *gin.RouterGroup, ws portssvc.WorkLogSvcFacade) {
	h := newWorkLogHandler(ws)

	workLogs := rg.Group("/worklogs")
	{
		workLogs.POST("", h.createWorkLog)
		workLogs.GET("", h.listWorkLogs)
	}
}

// createWorkLog records a day's processing for a worker.
func (h *workLogHandler) createWorkLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	var req dto.CreateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createWorkLog", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	params := portssvc.CreateWorkLogParams{
		WorkerID:     req.WorkerID,
		Date:         req.Date,
		KgsProcessed: req.KgsProcessed,
		AmountEarned: req.AmountEarned,
	}
	workLog, err := h.workLogService.CreateWorkLog(c.Request.Context(), firmID, params, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create work log", slog.String("error", err.Error()), slog.String("firm_id", firmID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work log"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkLogResponse(workLog))
}

// listWorkLogs returns all work logs of the firm.
func (h *workLogHandler) listWorkLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	logs, err := h.workLogService.ListWorkLogs(c.Request.Context(), firmID)
	if err != nil {
		logger.Error("Failed to list work logs", slog.String("error", err.Error()), slog.String("firm_id", firmID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list work logs"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkLogsResponse(logs))
}
