package repositories

import (
	"context"

	"masked-aadhaar.backend/internal/domain/entities"
)

// OTPRepository defines pending one-time-code operations. All deletes are
// idempotent: removing a row that is already gone is a no-op.
type OTPRepository interface {
	// Replace deletes any pending rows for the email and inserts the new one.
	Replace(ctx context.Context, otp *entities.PendingOTP) error
	GetByEmail(ctx context.Context, email string) (*entities.PendingOTP, error)
	DeleteByEmail(ctx context.Context, email string) error
	// DeleteExpired removes all rows whose expiration precedes now and
	// returns how many were swept.
	DeleteExpired(ctx context.Context, now int64) (int64, error)
	List(ctx context.Context) ([]*entities.PendingOTP, error)
	Count(ctx context.Context) (int64, error)
}
