package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"asset-hub-api-server/internal/auth"
	"asset-hub-api-server/internal/models"
	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/store"
)

type AuthHandler struct {
	Users         store.Users
	Packages      store.Packages
	Guard         *scope.Guard
	JWTExpiration time.Duration
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required,oneof=hr employee"`
	CompanyName string `json:"companyName"`
}

// Register creates an account. HR accounts start on the basic package.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
		return
	}
	if req.Role == models.RoleHR && req.CompanyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": "companyName is required for hr accounts"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to create account"})
		return
	}

	user := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		Password:  hashedPassword,
		Role:      req.Role,
		CreatedAt: time.Now(),
	}
	if req.Role == models.RoleHR {
		// New companies start on the seeded entry tier.
		basic, err := h.Packages.FindByName(context.Background(), "basic")
		if err != nil || basic == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to create account"})
			return
		}
		user.CompanyName = req.CompanyName
		user.PackageName = basic.Name
		user.EmployeeLimit = basic.EmployeeLimit
	}

	if err := h.Users.Insert(context.Background(), user); err != nil {
		if err == store.ErrDuplicate {
			c.JSON(http.StatusConflict, gin.H{"error": "conflict", "message": "An account with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to create account"})
		return
	}

	token, err := auth.GenerateJWT(user.Email, user.Name, user.Role, h.JWTExpiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
		return
	}

	user, err := h.Users.FindByEmail(context.Background(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to look up account"})
		return
	}
	if user == nil || !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(user.Email, user.Name, user.Role, h.JWTExpiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me returns the caller's profile, including the HR company-scoping record.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.Users.FindByEmail(context.Background(), callerEmail(c))
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "Unknown caller identity"})
		return
	}
	c.JSON(http.StatusOK, user)
}
