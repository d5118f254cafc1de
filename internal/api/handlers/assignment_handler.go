package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/socket"
	"asset-hub-api-server/internal/workflow"
)

type AssignmentHandler struct {
	Guard       *scope.Guard
	Assignments *workflow.Assignments
	Hub         *socket.Hub
}

// GetAssignedAssets lists the HR's company assignments.
func (h *AssignmentHandler) GetAssignedAssets(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	assignments, err := h.Assignments.ListForCompany(context.Background(), hr, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// GetMyAssets lists the calling employee's assignments.
func (h *AssignmentHandler) GetMyAssets(c *gin.Context) {
	employee, err := h.Guard.RequireEmployee(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	assignments, err := h.Assignments.ListForEmployee(context.Background(), employee, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// ReturnAsset hands a returnable asset back and restores availability.
func (h *AssignmentHandler) ReturnAsset(c *gin.Context) {
	employee, err := h.Guard.RequireEmployee(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	assignment, err := h.Assignments.Return(context.Background(), c.Param("id"), employee)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Hub.Notify(assignment.CompanyEmail, "asset.returned", assignment)
	c.JSON(http.StatusOK, gin.H{"message": "Asset returned", "assignment": assignment})
}
