package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/usecases"
	"masked-aadhaar.backend/pkg/crypto"
	"masked-aadhaar.backend/pkg/jwt"
	"masked-aadhaar.backend/pkg/redis"
)

const testSessionKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

func newAuthFixture(t *testing.T, withSessions bool) (*usecases.AuthUsecase, *MockUserRepository, *redis.SessionStore) {
	t.Helper()
	userRepo := new(MockUserRepository)
	jwtService := jwt.NewJWTService("test-secret", time.Hour, 24*time.Hour)

	var sessions *redis.SessionStore
	if withSessions {
		mr := miniredis.RunT(t)
		client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		var err error
		sessions, err = redis.NewSessionStore(client, testSessionKey)
		require.NoError(t, err)
	}

	return usecases.NewAuthUsecase(userRepo, jwtService, sessions, time.Hour), userRepo, sessions
}

func confirmedUser(t *testing.T, password string) *entities.User {
	t.Helper()
	hashed, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return &entities.User{
		ID:             7,
		Name:           "Asha Rao",
		Email:          "asha@example.com",
		HashedPassword: hashed,
	}
}

func TestAuthLogin_Success(t *testing.T) {
	uc, userRepo, _ := newAuthFixture(t, false)
	user := confirmedUser(t, "s3cretpass")

	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Email: user.Email, Password: "s3cretpass"})
	require.NoError(t, err)

	assert.Equal(t, user.Email, resp.Email)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Empty(t, resp.SessionID)
}

func TestAuthLogin_UnknownEmail(t *testing.T) {
	uc, userRepo, _ := newAuthFixture(t, false)

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domainerrors.ErrNotFound)

	_, err := uc.Login(context.Background(), &entities.LoginInput{Email: "nobody@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	uc, userRepo, _ := newAuthFixture(t, false)
	user := confirmedUser(t, "s3cretpass")

	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := uc.Login(context.Background(), &entities.LoginInput{Email: user.Email, Password: "wrongpass1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthLogin_CreatesSessionWhenConfigured(t *testing.T) {
	uc, userRepo, sessions := newAuthFixture(t, true)
	user := confirmedUser(t, "s3cretpass")

	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Email: user.Email, Password: "s3cretpass"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)

	data, err := sessions.GetSession(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, data.Email)
	assert.Equal(t, resp.AccessToken, data.AccessToken)
}
