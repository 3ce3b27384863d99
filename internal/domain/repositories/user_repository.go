package repositories

import (
	"context"

	"masked-aadhaar.backend/internal/domain/entities"
)

// UserRepository defines confirmed-user data operations
type UserRepository interface {
	// Create inserts a confirmed user. Duplicate vid, email or hashed
	// aadhaar values surface as ErrAlreadyExists.
	Create(ctx context.Context, user *entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// ExistsByIdentity reports whether a confirmed user already claims the
	// hashed aadhaar or the email.
	ExistsByIdentity(ctx context.Context, hashedAadhaar, email string) (bool, error)
	List(ctx context.Context) ([]*entities.User, error)
	Count(ctx context.Context) (int64, error)
}
