package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/workflow"
)

type BillingHandler struct {
	Guard    *scope.Guard
	Payments *workflow.Payments
}

func (h *BillingHandler) GetPackages(c *gin.Context) {
	packages, err := h.Payments.ListPackages(context.Background())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

type ConfirmPaymentPayload struct {
	PackageName   string  `json:"packageName" binding:"required"`
	TransactionID string  `json:"transactionID" binding:"required"`
	AmountPaid    float64 `json:"amountPaid" binding:"required,gt=0"`
}

// ConfirmPayment consumes the payment processor's confirmation after an
// out-of-band checkout. Replaying the same transactionID returns the original
// payment record instead of creating a second one.
func (h *BillingHandler) ConfirmPayment(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var payload ConfirmPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
		return
	}

	payment, err := h.Payments.Confirm(context.Background(), hr, workflow.PaymentInput{
		PackageName:   payload.PackageName,
		TransactionID: payload.TransactionID,
		AmountPaid:    payload.AmountPaid,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *BillingHandler) GetPayments(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	payments, err := h.Payments.History(context.Background(), hr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
