package usecases

import (
	"context"
	"os"

	"go.uber.org/zap"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/domain/repositories"
	"masked-aadhaar.backend/internal/infrastructure/render"
	"masked-aadhaar.backend/internal/metrics"
	"masked-aadhaar.backend/pkg/logger"
)

// fileExists is swapped in tests
var fileExists = func(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CardUsecase renders the masked ID card for a confirmed user and mails it.
// Artifacts are keyed by email; regenerating overwrites the previous pair,
// last writer wins.
type CardUsecase struct {
	userRepo repositories.UserRepository
	renderer CardRenderer
	mailer   Mailer
	logoPath string
}

func NewCardUsecase(
	userRepo repositories.UserRepository,
	renderer CardRenderer,
	mailer Mailer,
	logoPath string,
) *CardUsecase {
	return &CardUsecase{
		userRepo: userRepo,
		renderer: renderer,
		mailer:   mailer,
		logoPath: logoPath,
	}
}

// Generate renders the card for the user and emails it with the PDF attached
// and the PNG inline. A relay failure keeps the rendered artifacts on disk so
// the download routes still work.
func (u *CardUsecase) Generate(ctx context.Context, email string) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	fields := render.Fields{
		Name:         user.Name,
		DOB:          user.DOB,
		Gender:       string(user.Gender),
		VID:          user.VID,
		MaskedNumber: "XXXX XXXX " + user.LastFour,
	}
	pdfPath, imagePath, err := u.renderer.Render(user.Email, fields)
	if err != nil {
		return nil, err
	}
	metrics.CardsGeneratedTotal.Inc()

	if err := u.mailer.SendCard(user.Email, user.Name, pdfPath, imagePath, u.logoPath); err != nil {
		logger.Error(ctx, "Failed to send card mail", zap.String("email", user.Email), zap.Error(err))
		return nil, domainerrors.ErrMailDelivery
	}
	return user, nil
}

// PDFPath returns the path of a previously rendered PDF, or
// ErrCardNotGenerated if none exists for the email.
func (u *CardUsecase) PDFPath(email string) (string, error) {
	pdfPath, _ := u.renderer.ArtifactPaths(email)
	if !fileExists(pdfPath) {
		return "", domainerrors.ErrCardNotGenerated
	}
	return pdfPath, nil
}

// ImagePath returns the path of a previously rendered PNG, or
// ErrCardNotGenerated if none exists for the email.
func (u *CardUsecase) ImagePath(email string) (string, error) {
	_, imagePath := u.renderer.ArtifactPaths(email)
	if !fileExists(imagePath) {
		return "", domainerrors.ErrCardNotGenerated
	}
	return imagePath, nil
}
