package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/interfaces/http/response"
)

// AuthService abstracts the auth usecase for the handler
type AuthService interface {
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login authenticates a confirmed user
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if authResponse.SessionID != "" {
		c.SetCookie("session_id", authResponse.SessionID, 3600*24, "/", "", false, true)
	}

	response.Success(c, http.StatusOK, authResponse)
}
