package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
)

// paymentHandler handles HTTP requests for lump-sum group wage payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to group payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	rg.POST("/groups/:id/payments", h.allocatePayment)
	rg.POST("/groups/:id/payments/settle", h.payAll)
	rg.GET("/groups/:id/payments", h.listPayments)
	rg.GET("/payables", h.listPayables)
}

func (h *paymentHandler) allocatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AllocateGroupPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.paymentService.AllocateGroupPayment(c.Request.Context(), c.Param("id"), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to allocate group payment")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// payAll settles every unpaid wage of the group in one payment.
func (h *paymentHandler) payAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.paymentService.PayAllGroup(c.Request.Context(), c.Param("id"), creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to settle group wages")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payments, err := h.paymentService.ListGroupPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list group payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupPaymentResponses(payments))
}

func (h *paymentHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payables, err := h.paymentService.ListPayables(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list payables")
		return
	}

	c.JSON(http.StatusOK, payables)
}
