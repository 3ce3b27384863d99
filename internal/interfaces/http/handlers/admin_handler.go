package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"masked-aadhaar.backend/internal/domain/entities"
	"masked-aadhaar.backend/internal/interfaces/http/response"
)

// AdminService abstracts the admin usecase for the handler
type AdminService interface {
	ListUsers(ctx context.Context) ([]*entities.User, error)
	ListOTPs(ctx context.Context) ([]*entities.PendingOTPView, error)
	UserInfo(ctx context.Context) ([]*entities.UserInfo, error)
	OTPCount(ctx context.Context) (int64, error)
	ActiveUsers(ctx context.Context) (int64, error)
	ResetDatabase(ctx context.Context) error
}

// AdminHandler serves the unauthenticated diagnostics endpoints. These are
// demo-environment tooling and expose stored hashes, never raw secrets.
type AdminHandler struct {
	adminUsecase AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase AdminService) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// ShowUsers lists all confirmed users
// GET /show-users
func (h *AdminHandler) ShowUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ShowOTPs lists the pending rows with remaining seconds
// GET /show-otps
func (h *AdminHandler) ShowOTPs(c *gin.Context) {
	otps, err := h.adminUsecase.ListOTPs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"otps": otps})
}

// UserInfo lists the trimmed per-user rows, newest first
// GET /user-info
func (h *AdminHandler) UserInfo(c *gin.Context) {
	infos, err := h.adminUsecase.UserInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"userInfo": infos})
}

// OTPCount returns how many pending rows exist
// GET /otp-count
func (h *AdminHandler) OTPCount(c *gin.Context) {
	count, err := h.adminUsecase.OTPCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"otp_requests": count})
}

// ActiveUsers returns how many confirmed users exist
// GET /active-users
func (h *AdminHandler) ActiveUsers(c *gin.Context) {
	count, err := h.adminUsecase.ActiveUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"active_users": count})
}

// ResetDatabase drops and recreates every table
// POST /reset-database
func (h *AdminHandler) ResetDatabase(c *gin.Context) {
	if err := h.adminUsecase.ResetDatabase(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Database has been reset.",
	})
}
