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

// workerHandler handles HTTP requests related to workers of a firm.
type workerHandler struct {
	workerService    portssvc.WorkerSvcFacade
	reportingService portssvc.ReportingSvcFacade
	paymentService   portssvc.PaymentSvcFacade
}

// newWorkerHandler creates a new workerHandler.
func newWorkerHandler(ws portssvc.WorkerSvcFacade, rs portssvc.ReportingSvcFacade, ps portssvc.PaymentSvcFacade) *workerHandler {
	return &workerHandler{
		workerService:    ws,
		reportingService: rs,
		paymentService:   ps,
	}
}

// registerWorkerRoutes registers worker routes nested under a firm.
func registerWorkerRoutes(rg *gin.RouterGroup, ws portssvc.WorkerSvcFacade, rs portssvc.ReportingSvcFacade, ps portssvc.PaymentSvcFacade) {
	h := newWorkerHandler(ws, rs, ps)

	workers := rg.Group("/workers")
	{
		workers.POST("", h.createWorker)
		workers.GET("", h.listWorkers)
		workers.GET("/:worker_id", h.getWorker)
		workers.PUT("/:worker_id", h.updateWorker)
		workers.POST("/:worker_id/clear-advance", h.clearAdvance)
	}
}

// createWorker registers a new worker under the firm.
func (h *workerHandler) createWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), firmID, req.Name, req.Phone, req.Avatar, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Firm not found"})
			return
		}
		logger.Error("Failed to create worker", slog.String("error", err.Error()), slog.String("firm_id", firmID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create worker"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkerResponse(worker))
}

// listWorkers returns all workers of the firm.
func (h *workerHandler) listWorkers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	workers, err := h.workerService.ListWorkers(c.Request.Context(), firmID)
	if err != nil {
		logger.Error("Failed to list workers", slog.String("error", err.Error()), slog.String("firm_id", firmID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workers"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkersResponse(workers))
}

// getWorker returns one worker with the derived pending payable balance.
// A missing worker is a plain 404, never a computation error.
func (h *workerHandler) getWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")
	workerID := c.Param("worker_id")

	worker, err := h.workerService.FindWorkerByID(c.Request.Context(), workerID)
	if err != nil || worker.FirmID != firmID {
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to get worker", slog.String("error", err.Error()), slog.String("worker_id", workerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get worker"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	payable, err := h.reportingService.PendingPayable(c.Request.Context(), workerID)
	if err != nil {
		logger.Error("Failed to compute pending payable", slog.String("error", err.Error()), slog.String("worker_id", workerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute pending payable"})
		return
	}

	c.JSON(http.StatusOK, dto.WorkerDetailResponse{
		WorkerResponse: dto.ToWorkerResponse(worker),
		PendingPayable: payable,
	})
}

// updateWorker updates the identity fields of a worker.
func (h *workerHandler) updateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID := c.Param("worker_id")

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	params := portssvc.UpdateWorkerProfileParams{
		Name:   req.Name,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	}
	worker, err := h.workerService.UpdateWorkerProfile(c.Request.Context(), workerID, params, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		logger.Error("Failed to update worker", slog.String("error", err.Error()), slog.String("worker_id", workerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update worker"})
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// clearAdvance settles the worker's full outstanding advance.
func (h *workerHandler) clearAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")
	workerID := c.Param("worker_id")

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.paymentService.ClearAdvance(c.Request.Context(), firmID, workerID, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to clear advance", slog.String("error", err.Error()), slog.String("worker_id", workerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear advance"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}
