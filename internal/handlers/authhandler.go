package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/dtos"
	"jobboard-api/internal/services"
)

type AuthHandler struct {
	UserService *services.UserService
	Issuer      *auth.TokenIssuer
}

func NewAuthHandler(users *services.UserService, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		UserService: users,
		Issuer:      issuer,
	}
}

// Register is the POST /api/auth/register endpoint: creates the account
// and hands back a token right away so the client can skip a login round.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.UserService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Issuer.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

// Login is the POST /api/auth/login endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Issuer.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{Token: token})
}
