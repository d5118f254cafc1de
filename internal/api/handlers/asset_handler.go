package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/store"
	"asset-hub-api-server/internal/workflow"
)

type AssetHandler struct {
	Guard  *scope.Guard
	Ledger *workflow.Ledger
}

type AssetPayload struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=Returnable NonReturnable"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var payload AssetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
		return
	}

	asset, err := h.Ledger.CreateAsset(context.Background(), hr, workflow.AssetInput{
		Name:     payload.Name,
		Type:     payload.Type,
		Quantity: payload.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

func (h *AssetHandler) GetAssets(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	assets, total, err := h.Ledger.ListAssets(context.Background(), hr, listFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets, "total": total})
}

func (h *AssetHandler) GetAssetByID(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	asset, err := h.Ledger.GetAsset(context.Background(), hr, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var payload AssetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
		return
	}

	asset, err := h.Ledger.EditAsset(context.Background(), hr, c.Param("id"), workflow.AssetInput{
		Name:     payload.Name,
		Type:     payload.Type,
		Quantity: payload.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	hr, err := h.Guard.RequireHR(context.Background(), callerEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Ledger.DeleteAsset(context.Background(), hr, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}

// BrowseCatalog lets employees list assets across companies to file requests.
func (h *AssetHandler) BrowseCatalog(c *gin.Context) {
	if _, err := h.Guard.RequireEmployee(context.Background(), callerEmail(c)); err != nil {
		respondError(c, err)
		return
	}

	assets, total, err := h.Ledger.BrowseCatalog(context.Background(), listFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets, "total": total})
}

func listFilter(c *gin.Context) store.AssetFilter {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	return store.AssetFilter{
		Search: c.Query("search"),
		Type:   c.Query("type"),
		Page:   page,
		Limit:  limit,
	}
}
