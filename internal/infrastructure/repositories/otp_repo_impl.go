package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/infrastructure/models"
)

// OTPRepository implements pending one-time-code operations
type OTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Replace deletes any pending rows for the email and inserts the new one.
// Email is deliberately not unique in the schema; this delete-then-insert is
// what keeps at most one active row per email.
func (r *OTPRepository) Replace(ctx context.Context, otp *entities.PendingOTP) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	if err := db.Where("email = ?", otp.Email).Delete(&models.OTP{}).Error; err != nil {
		return err
	}

	m := &models.OTP{
		Email:      otp.Email,
		HashedOTP:  otp.HashedOTP,
		Expiration: otp.Expiration,
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}

	otp.ID = m.ID
	return nil
}

// GetByEmail returns the pending row for the email, expired or not
func (r *OTPRepository) GetByEmail(ctx context.Context, email string) (*entities.PendingOTP, error) {
	var m models.OTP
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.PendingOTP{
		ID:         m.ID,
		Email:      m.Email,
		HashedOTP:  m.HashedOTP,
		Expiration: m.Expiration,
	}, nil
}

// DeleteByEmail removes all pending rows for the email; a no-op when none exist
func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	return GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).Delete(&models.OTP{}).Error
}

// DeleteExpired removes all rows whose expiration precedes now
func (r *OTPRepository) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("expiration < ?", now).Delete(&models.OTP{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// List returns all pending rows
func (r *OTPRepository) List(ctx context.Context) ([]*entities.PendingOTP, error) {
	var otpModels []models.OTP
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("expiration ASC").Find(&otpModels).Error; err != nil {
		return nil, err
	}

	otps := make([]*entities.PendingOTP, 0, len(otpModels))
	for _, m := range otpModels {
		otps = append(otps, &entities.PendingOTP{
			ID:         m.ID,
			Email:      m.Email,
			HashedOTP:  m.HashedOTP,
			Expiration: m.Expiration,
		})
	}
	return otps, nil
}

// Count returns the number of pending rows
func (r *OTPRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.OTP{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
