package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"asset-hub-api-server/internal/s3"
	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/store"
)

type CompanyHandler struct {
	Guard    *scope.Guard
	Users    store.Users
	Uploader *s3.Uploader
}

// UploadLogo stores the company logo in S3 and records its URL on the HR's
// user document.
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "internal", "message": "Logo storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": "logo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": "could not read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := fmt.Sprintf("logos/%s-%s%s", hr.Email, uuid.New().String()[:8], filepath.Ext(fileHeader.Filename))
	url, err := h.Uploader.UploadFile(context.Background(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to upload logo"})
		return
	}

	if err := h.Users.SetCompanyLogo(context.Background(), hr.Email, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to save logo URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logoURL": url})
}
