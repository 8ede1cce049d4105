package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/plot_sales_admin/internal/core/ports/services"
	"github.com/SscSPs/plot_sales_admin/internal/dto"
	"github.com/SscSPs/plot_sales_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers the payment routes nested under an account.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/accounts/:id/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Appends an installment and returns the refreshed balance and status
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResult
// @Failure 400 {object} dto.PaymentResult
// @Failure 404 {object} dto.PaymentResult
// @Failure 500 {object} dto.PaymentResult
// @Security BearerAuth
// @Router /accounts/{id}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("target_account_id", accountID))

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.PaymentFailure("Invalid request format: " + err.Error()))
		return
	}

	recordedBy := middleware.GetAdminEmailFromCtx(c.Request.Context())
	receipt, err := h.paymentService.RecordPayment(c.Request.Context(), accountID, req, recordedBy)
	if err != nil {
		status, body := errorBody(logger, err, "Failed to record payment")
		c.JSON(status, dto.PaymentFailure(body.Error))
		return
	}

	logger.Info("Payment recorded successfully",
		slog.String("payment_id", receipt.Payment.PaymentID),
		slog.String("balance", receipt.Balance.String()),
		slog.String("status", string(receipt.Status)))
	c.JSON(http.StatusCreated, dto.ToPaymentResult(receipt))
}

// listPayments godoc
// @Summary List payments of an account
// @Tags payments
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("target_account_id", accountID))

	payments, err := h.paymentService.ListPayments(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(errorBody(logger, err, "Failed to list payments"))
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: dto.ToListPaymentResponse(payments)})
}
