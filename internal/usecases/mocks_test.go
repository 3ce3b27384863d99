package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"masked-aadhaar.backend/internal/domain/entities"
	"masked-aadhaar.backend/internal/infrastructure/render"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByIdentity(ctx context.Context, hashedAadhaar, email string) (bool, error) {
	args := m.Called(ctx, hashedAadhaar, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Replace(ctx context.Context, otp *entities.PendingOTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) GetByEmail(ctx context.Context, email string) (*entities.PendingOTP, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PendingOTP), args.Error(1)
}

func (m *MockOTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockOTPRepository) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOTPRepository) List(ctx context.Context) ([]*entities.PendingOTP, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PendingOTP), args.Error(1)
}

func (m *MockOTPRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock LivenessRepository
type MockLivenessRepository struct {
	mock.Mock
}

func (m *MockLivenessRepository) Create(ctx context.Context, check *entities.LivenessCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockLivenessRepository) ListRecent(ctx context.Context, limit int) ([]*entities.LivenessCheck, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LivenessCheck), args.Error(1)
}

// Mock StoreManager
type MockStoreManager struct {
	mock.Mock
}

func (m *MockStoreManager) Migrate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreManager) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOTP(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

func (m *MockMailer) SendCard(to, name, pdfPath, imagePath, logoPath string) error {
	args := m.Called(to, name, pdfPath, imagePath, logoPath)
	return args.Error(0)
}

// Mock CardRenderer
type MockCardRenderer struct {
	mock.Mock
}

func (m *MockCardRenderer) Render(email string, f render.Fields) (string, string, error) {
	args := m.Called(email, f)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockCardRenderer) ArtifactPaths(email string) (string, string) {
	args := m.Called(email)
	return args.String(0), args.String(1)
}
