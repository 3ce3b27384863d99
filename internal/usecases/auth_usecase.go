package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/domain/repositories"
	"masked-aadhaar.backend/internal/metrics"
	"masked-aadhaar.backend/pkg/crypto"
	"masked-aadhaar.backend/pkg/jwt"
	"masked-aadhaar.backend/pkg/logger"
	"masked-aadhaar.backend/pkg/redis"
)

// AuthUsecase handles login for confirmed users
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	sessions   *redis.SessionStore // nil when Redis is not configured
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new auth usecase. sessions may be nil; logins
// then return tokens only.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	sessions *redis.SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Login authenticates a confirmed user. Unknown email and wrong password are
// reported distinctly (the original wire contract exposes both).
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.HashedPassword) {
		metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	resp := &entities.AuthResponse{
		Email:        user.Email,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}

	if u.sessions != nil {
		sessionID := uuid.NewString()
		data := &redis.SessionData{
			Email:        user.Email,
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		}
		if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
			// tokens still work without the session; don't fail the login
			logger.Warn(ctx, "Failed to create login session", zap.Error(err))
		} else {
			resp.SessionID = sessionID
		}
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return resp, nil
}
