package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/workflow"
)

type AffiliationHandler struct {
	Guard        *scope.Guard
	Affiliations *workflow.Affiliations
}

// GetEmployees lists the company's active affiliations.
func (h *AffiliationHandler) GetEmployees(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	affiliations, err := h.Affiliations.ListEmployees(context.Background(), hr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, affiliations)
}

// RemoveEmployee deactivates the affiliation and cascades returns over the
// employee's outstanding assignments.
func (h *AffiliationHandler) RemoveEmployee(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	cascaded, err := h.Affiliations.RemoveEmployee(context.Background(), c.Param("email"), hr)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":             "Employee removed",
		"returnedAssignments": cascaded,
	})
}
