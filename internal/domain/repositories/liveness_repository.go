package repositories

import (
	"context"

	"masked-aadhaar.backend/internal/domain/entities"
)

// LivenessRepository stores the audit trail of voice/captcha probes
type LivenessRepository interface {
	Create(ctx context.Context, check *entities.LivenessCheck) error
	ListRecent(ctx context.Context, limit int) ([]*entities.LivenessCheck, error)
}
