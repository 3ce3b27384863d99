package repositories

import (
	"context"

	"gorm.io/gorm"
	"masked-aadhaar.backend/internal/domain/entities"
	"masked-aadhaar.backend/internal/infrastructure/models"
)

// LivenessRepository implements the liveness audit trail
type LivenessRepository struct {
	db *gorm.DB
}

// NewLivenessRepository creates a new liveness repository
func NewLivenessRepository(db *gorm.DB) *LivenessRepository {
	return &LivenessRepository{db: db}
}

// Create appends an audit row
func (r *LivenessRepository) Create(ctx context.Context, check *entities.LivenessCheck) error {
	m := &models.LivenessCheck{
		Email:     check.Email,
		Kind:      string(check.Kind),
		Passed:    check.Passed,
		CreatedAt: check.CreatedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	check.ID = m.ID
	return nil
}

// ListRecent returns the newest audit rows, most recent first
func (r *LivenessRepository) ListRecent(ctx context.Context, limit int) ([]*entities.LivenessCheck, error) {
	if limit <= 0 {
		limit = 50
	}

	var checkModels []models.LivenessCheck
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&checkModels).Error
	if err != nil {
		return nil, err
	}

	checks := make([]*entities.LivenessCheck, 0, len(checkModels))
	for _, m := range checkModels {
		checks = append(checks, &entities.LivenessCheck{
			ID:        m.ID,
			Email:     m.Email,
			Kind:      entities.LivenessKind(m.Kind),
			Passed:    m.Passed,
			CreatedAt: m.CreatedAt,
		})
	}
	return checks, nil
}
