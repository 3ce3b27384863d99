package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/interfaces/http/response"
)

// LivenessService abstracts the liveness usecase for the handler
type LivenessService interface {
	VerifyVoice(ctx context.Context, input *entities.VoiceInput) (*entities.LivenessResult, error)
	VerifyCaptcha(ctx context.Context, input *entities.CaptchaInput) (*entities.LivenessResult, error)
	NewChallenge() (*entities.CaptchaChallenge, error)
	ListRecent(ctx context.Context, limit int) ([]*entities.LivenessCheck, error)
}

// LivenessHandler serves the auxiliary voice and captcha probes
type LivenessHandler struct {
	livenessUsecase LivenessService
}

// NewLivenessHandler creates a new liveness handler
func NewLivenessHandler(livenessUsecase LivenessService) *LivenessHandler {
	return &LivenessHandler{
		livenessUsecase: livenessUsecase,
	}
}

// VerifyVoice checks a client-side transcript against the expected phrase
// POST /verify-voice
func (h *LivenessHandler) VerifyVoice(c *gin.Context) {
	var input entities.VoiceInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.livenessUsecase.VerifyVoice(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// NewCaptcha issues a fresh arithmetic challenge
// GET /captcha
func (h *LivenessHandler) NewCaptcha(c *gin.Context) {
	challenge, err := h.livenessUsecase.NewChallenge()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, challenge)
}

// VerifyCaptcha checks the answer against the issued challenge token
// POST /verify-captcha
func (h *LivenessHandler) VerifyCaptcha(c *gin.Context) {
	var input entities.CaptchaInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.livenessUsecase.VerifyCaptcha(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ListChecks returns the newest audit rows
// GET /liveness-checks
func (h *LivenessHandler) ListChecks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	checks, err := h.livenessUsecase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"livenessChecks": checks})
}
