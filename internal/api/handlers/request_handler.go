package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/socket"
	"asset-hub-api-server/internal/workflow"
)

type RequestHandler struct {
	Guard    *scope.Guard
	Requests *workflow.Requests
	Hub      *socket.Hub
}

type CreateRequestPayload struct {
	AssetID      string `json:"assetID" binding:"required"`
	CompanyEmail string `json:"companyEmail" binding:"required,email"`
	Note         string `json:"note"`
}

// CreateRequest files a pending request. The asset is validated at approval
// time, not here.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	employee, err := h.Guard.RequireEmployee(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var payload CreateRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
		return
	}

	request, err := h.Requests.Create(context.Background(), employee, payload.CompanyEmail, workflow.RequestInput{
		AssetID: payload.AssetID,
		Note:    payload.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.Hub.Notify(request.CompanyEmail, "request.created", request)
	c.JSON(http.StatusCreated, request)
}

// GetRequests lists the HR's company requests, optionally filtered by status
// or requester email.
func (h *RequestHandler) GetRequests(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	requests, err := h.Requests.ListForCompany(context.Background(), hr, c.Query("status"), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetMyRequests lists the calling employee's own requests.
func (h *RequestHandler) GetMyRequests(c *gin.Context) {
	employee, err := h.Guard.RequireEmployee(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	requests, err := h.Requests.ListForEmployee(context.Background(), employee, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	assignment, err := h.Requests.Approve(context.Background(), c.Param("id"), hr)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Hub.Notify(assignment.EmployeeEmail, "request.approved", assignment)
	c.JSON(http.StatusOK, gin.H{"message": "Request approved", "assignment": assignment})
}

func (h *RequestHandler) RejectRequest(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	request, err := h.Requests.Reject(context.Background(), c.Param("id"), hr)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Hub.Notify(request.RequesterEmail, "request.rejected", request)
	c.JSON(http.StatusOK, gin.H{"message": "Request rejected"})
}
