package handlers

import (
	"errors"
	"log"
	"net/http"

	"todo-app/backend/internal/middleware"
	"todo-app/backend/internal/models"
	"todo-app/backend/internal/repositories"
	"todo-app/backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_error",
			"message": "Invalid request format",
		})
		return
	}

	token, _, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "duplicate_email",
				"message": "Email already registered",
			})
			return
		}
		internalError(c, "registration failed", err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_error",
			"message": "Invalid request format",
		})
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			log.Printf("request %s: login refused for %s: invalid credentials", middleware.RequestIDFromContext(c), req.Email)
		case errors.Is(err, services.ErrInactiveAccount):
			log.Printf("request %s: login refused for %s: inactive account", middleware.RequestIDFromContext(c), req.Email)
		default:
			internalError(c, "login failed", err)
			return
		}
		// The response body never distinguishes the two refusal kinds.
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "invalid_credentials",
			"message": "Incorrect email or password",
		})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// internalError logs full context server-side and returns a generic body.
func internalError(c *gin.Context, message string, err error) {
	log.Printf("request %s: %s: %v", middleware.RequestIDFromContext(c), message, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "internal_error",
		"message": "An unexpected error occurred",
	})
}
