package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/store"
)

type StatsHandler struct {
	Guard    *scope.Guard
	Assets   store.Assets
	Requests store.Requests
}

// GetStats serves the HR dashboard: asset counts by type, the most requested
// assets, pending request count, and employee headroom.
func (h *StatsHandler) GetStats(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := context.Background()

	typeCounts, err := h.Assets.CountByType(ctx, hr.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to aggregate assets"})
		return
	}

	topRequested, err := h.Requests.TopRequested(ctx, hr.Email, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to aggregate requests"})
		return
	}

	pending, err := h.Requests.CountPending(ctx, hr.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to count pending requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assetsByType":     typeCounts,
		"topRequested":     topRequested,
		"pendingRequests":  pending,
		"currentEmployees": hr.CurrentEmployees,
		"employeeLimit":    hr.EmployeeLimit,
		"packageName":      hr.PackageName,
	})
}
