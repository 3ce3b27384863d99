package usecases

import "masked-aadhaar.backend/internal/infrastructure/render"

// Mailer dispatches transactional mail. One attempt per call; failures
// propagate to the caller.
type Mailer interface {
	SendOTP(to, code string) error
	SendCard(to, name, pdfPath, imagePath, logoPath string) error
}

// CardRenderer produces the per-user card artifacts
type CardRenderer interface {
	Render(email string, f render.Fields) (pdfPath, imagePath string, err error)
	ArtifactPaths(email string) (pdfPath, imagePath string)
}
