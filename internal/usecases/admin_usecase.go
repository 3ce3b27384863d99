package usecases

import (
	"context"
	"time"

	"masked-aadhaar.backend/internal/domain/entities"
	"masked-aadhaar.backend/internal/domain/repositories"
	"masked-aadhaar.backend/pkg/logger"
)

// AdminUsecase backs the unauthenticated diagnostics routes. These expose
// stored hashes, never raw secrets.
type AdminUsecase struct {
	userRepo repositories.UserRepository
	otpRepo  repositories.OTPRepository
	store    repositories.StoreManager
}

func NewAdminUsecase(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	store repositories.StoreManager,
) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo, otpRepo: otpRepo, store: store}
}

// ListUsers returns all confirmed users, newest first
func (u *AdminUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx)
}

// ListOTPs returns the pending rows with their remaining seconds. Rows that
// expired but have not been swept yet show as 0.
func (u *AdminUsecase) ListOTPs(ctx context.Context) ([]*entities.PendingOTPView, error) {
	otps, err := u.otpRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	views := make([]*entities.PendingOTPView, 0, len(otps))
	for _, otp := range otps {
		views = append(views, &entities.PendingOTPView{
			Email:         otp.Email,
			RemainingTime: otp.RemainingAt(now),
		})
	}
	return views, nil
}

// UserInfo returns the trimmed per-user listing, newest first
func (u *AdminUsecase) UserInfo(ctx context.Context) ([]*entities.UserInfo, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]*entities.UserInfo, 0, len(users))
	for _, user := range users {
		infos = append(infos, &entities.UserInfo{
			Email:         user.Email,
			RegisteredAt:  user.RegisteredTime().Format("2006-01-02 15:04:05"),
			HashedAadhaar: user.HashedAadhaar,
		})
	}
	return infos, nil
}

// OTPCount returns the number of pending rows
func (u *AdminUsecase) OTPCount(ctx context.Context) (int64, error) {
	return u.otpRepo.Count(ctx)
}

// ActiveUsers returns the number of confirmed users
func (u *AdminUsecase) ActiveUsers(ctx context.Context) (int64, error) {
	return u.userRepo.Count(ctx)
}

// ResetDatabase drops and recreates every table. Destructive and
// unauthenticated, for demo environments only.
func (u *AdminUsecase) ResetDatabase(ctx context.Context) error {
	logger.Warn(ctx, "Resetting database: all tables will be dropped and recreated")
	return u.store.Reset(ctx)
}
