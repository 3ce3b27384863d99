package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/interfaces/http/response"
)

// CardService abstracts the card usecase for the handler
type CardService interface {
	Generate(ctx context.Context, email string) (*entities.User, error)
	PDFPath(email string) (string, error)
	ImagePath(email string) (string, error)
}

// CardHandler serves card generation and artifact downloads
type CardHandler struct {
	cardUsecase CardService
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardUsecase CardService) *CardHandler {
	return &CardHandler{
		cardUsecase: cardUsecase,
	}
}

// Generate renders the masked card for a confirmed user and mails it
// GET /generate-aadhaar-card/:email
func (h *CardHandler) Generate(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.Error(c, domainerrors.BadRequest("email is required"))
		return
	}

	user, err := h.cardUsecase.Generate(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Card generated and sent to your email.",
		"email":   user.Email,
		"vid":     user.VID,
	})
}

// DownloadPDF serves a previously rendered PDF
// GET /download-pdf/:email
func (h *CardHandler) DownloadPDF(c *gin.Context) {
	path, err := h.cardUsecase.PDFPath(c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(path, "aadhaar-card.pdf")
}

// DownloadImage serves a previously rendered PNG
// GET /download-image/:email
func (h *CardHandler) DownloadImage(c *gin.Context) {
	path, err := h.cardUsecase.ImagePath(c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "image/png")
	c.FileAttachment(path, "aadhaar-card.png")
}
