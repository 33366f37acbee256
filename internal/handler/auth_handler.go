package handler

import (
	"errors"
	"net/http"

	"inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	svc *service.AuthService
	log zerolog.Logger
}

func NewAuthHandler(svc *service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log.With().Str("component", "auth_handler").Logger()}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// UpdatePropertiesRequest distinguishes absent fields from empty ones;
// username doubles as the lookup key.
type UpdatePropertiesRequest struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing username or password"})
		return
	}
	u, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "username": u.Username, "slug": u.Slug})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	u, err := h.svc.Register(req.Username, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Author account already exists"})
			return
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration successful", "slug": u.Slug})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}
	message := h.svc.ForgotPassword(req.Email)
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *AuthHandler) UpdateProperties(c *gin.Context) {
	var req UpdatePropertiesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == nil || *req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required to update properties."})
		return
	}
	u, err := h.svc.UpdateProperties(*req.Username, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Author not found"})
			return
		}
		h.log.Error().Err(err).Msg("property update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Properties updated successfully", "slug": u.Slug})
}
