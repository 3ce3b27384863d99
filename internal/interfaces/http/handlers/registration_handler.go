package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/interfaces/http/response"
)

// RegistrationService abstracts the registration usecase for the handler
type RegistrationService interface {
	Start(ctx context.Context, input *entities.RegistrationInput) error
	Resend(ctx context.Context, email string) error
	Check(ctx context.Context, email string) (*entities.OTPStatus, error)
	Verify(ctx context.Context, input *entities.VerifyInput) (*entities.User, error)
	Cancel(ctx context.Context, email string) error
}

// RegistrationHandler handles the registration and OTP endpoints
type RegistrationHandler struct {
	registrationUsecase RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationUsecase RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
	}
}

// Register starts a registration and sends the OTP mail
// POST /register
func (h *RegistrationHandler) Register(c *gin.Context) {
	var input entities.RegistrationInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.registrationUsecase.Start(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "OTP sent to your email. It is valid for 5 minutes.",
	})
}

// VerifyOTP confirms a pending registration
// POST /verify-otp
func (h *RegistrationHandler) VerifyOTP(c *gin.Context) {
	var input entities.VerifyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.registrationUsecase.Verify(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Registration successful.",
		"email":   user.Email,
		"vid":     user.VID,
	})
}

// ResendOTP replaces the pending code and sends a fresh mail
// POST /resend-otp
func (h *RegistrationHandler) ResendOTP(c *gin.Context) {
	var input entities.EmailInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.registrationUsecase.Resend(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "A new OTP has been sent to your email.",
	})
}

// CheckOTP reports whether a live code exists and its remaining seconds
// POST /check-otp
func (h *RegistrationHandler) CheckOTP(c *gin.Context) {
	var input entities.EmailInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	status, err := h.registrationUsecase.Check(c.Request.Context(), input.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// DeleteOTP cancels a pending registration
// POST /delete-otp
func (h *RegistrationHandler) DeleteOTP(c *gin.Context) {
	var input entities.EmailInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.registrationUsecase.Cancel(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Pending OTP removed.",
	})
}
