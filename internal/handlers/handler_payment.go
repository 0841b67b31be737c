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

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers payment routes nested under a firm.
func registerPaymentRoutes(rg *gin.RouterGroup, ps portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(ps)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
	}
}

// createPayment records a money movement for a worker.
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	params := portssvc.RecordPaymentParams{
		WorkerID: req.WorkerID,
		Date:     req.Date,
		Amount:   req.Amount,
		Type:     req.Type,
	}
	payment, err := h.paymentService.RecordPayment(c.Request.Context(), firmID, params, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record payment", slog.String("error", err.Error()), slog.String("firm_id", firmID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments returns all payments of the firm.
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	firmID := c.Param("firm_id")

	payments, err := h.paymentService.ListPayments(c.Request.Context(), firmID)
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()), slog.String("firm_id", firmID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}
