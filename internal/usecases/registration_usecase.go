package usecases

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/domain/repositories"
	"masked-aadhaar.backend/internal/metrics"
	"masked-aadhaar.backend/pkg/crypto"
	"masked-aadhaar.backend/pkg/logger"
	"masked-aadhaar.backend/pkg/vid"
)

// maxVIDAttempts bounds the regenerate-on-conflict loop for virtual IDs.
const maxVIDAttempts = 5

var (
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)

	nowFunc     = time.Now
	generateVID = vid.Generate
)

// RegistrationUsecase drives a registration from pending to confirmed:
// NONE -> PENDING (Start/Resend), PENDING -> CONFIRMED (Verify), with
// expiry and cancellation as side exits.
type RegistrationUsecase struct {
	userRepo repositories.UserRepository
	otpRepo  repositories.OTPRepository
	uow      repositories.UnitOfWork
	mailer   Mailer
	otpTTL   time.Duration
}

// NewRegistrationUsecase creates a new registration usecase. A non-positive
// ttl falls back to the standard 300-second window.
func NewRegistrationUsecase(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	uow repositories.UnitOfWork,
	mailer Mailer,
	otpTTL time.Duration,
) *RegistrationUsecase {
	if otpTTL <= 0 {
		otpTTL = entities.OTPTTL
	}
	return &RegistrationUsecase{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		uow:      uow,
		mailer:   mailer,
		otpTTL:   otpTTL,
	}
}

// Start begins a registration: validates the profile, rejects identities
// already claimed by a confirmed user, replaces any pending code for the
// email and dispatches a fresh one. A prior pending row never blocks a new
// start; it is replaced.
func (u *RegistrationUsecase) Start(ctx context.Context, input *entities.RegistrationInput) error {
	if err := validateProfile(input); err != nil {
		return err
	}

	hashedAadhaar := crypto.SHA256Hex(input.Aadhaar)
	exists, err := u.userRepo.ExistsByIdentity(ctx, hashedAadhaar, input.Email)
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.ErrDuplicateIdentity
	}

	if err := u.issueOTP(ctx, input.Email); err != nil {
		return err
	}

	metrics.RegistrationsStartedTotal.Inc()
	return nil
}

// Resend unconditionally replaces any pending code for the email and
// dispatches a new one. No rate limiting.
func (u *RegistrationUsecase) Resend(ctx context.Context, email string) error {
	return u.issueOTP(ctx, email)
}

// Check is a read-only probe for a live pending code. As a side effect an
// already-expired row found here is deleted.
func (u *RegistrationUsecase) Check(ctx context.Context, email string) (*entities.OTPStatus, error) {
	otp, err := u.otpRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.OTPStatus{}, nil
		}
		return nil, err
	}

	now := nowFunc()
	if otp.ExpiredAt(now) {
		if err := u.otpRepo.DeleteByEmail(ctx, email); err != nil {
			return nil, err
		}
		return &entities.OTPStatus{}, nil
	}

	return &entities.OTPStatus{OTPExists: true, RemainingTime: otp.RemainingAt(now)}, nil
}

// Verify confirms a registration. Expiry is checked strictly before code
// equality, so an expired-but-matching code reports as expired. A missing
// row and a wrong code produce the same ErrInvalidOTP so the caller cannot
// tell which was true. On a match, the user insert and the pending-row
// delete commit together or not at all.
func (u *RegistrationUsecase) Verify(ctx context.Context, input *entities.VerifyInput) (*entities.User, error) {
	if err := validateProfile(&input.RegistrationInput); err != nil {
		return nil, err
	}

	otp, err := u.otpRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			metrics.OTPVerificationsTotal.WithLabelValues("invalid").Inc()
			return nil, domainerrors.ErrInvalidOTP
		}
		return nil, err
	}

	if otp.ExpiredAt(nowFunc()) {
		if err := u.otpRepo.DeleteByEmail(ctx, input.Email); err != nil {
			return nil, err
		}
		metrics.OTPVerificationsTotal.WithLabelValues("expired").Inc()
		return nil, domainerrors.ErrOTPExpired
	}

	if crypto.SHA256Hex(input.OTP) != otp.HashedOTP {
		metrics.OTPVerificationsTotal.WithLabelValues("invalid").Inc()
		return nil, domainerrors.ErrInvalidOTP
	}

	hashedAadhaar := crypto.SHA256Hex(input.Aadhaar)
	exists, err := u.userRepo.ExistsByIdentity(ctx, hashedAadhaar, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.ErrDuplicateIdentity
	}

	hashedPassword, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxVIDAttempts; attempt++ {
		user := &entities.User{
			Name:           input.Name,
			DOB:            input.DOB,
			Gender:         entities.Gender(input.Gender),
			VID:            generateVID(input.Aadhaar),
			HashedAadhaar:  hashedAadhaar,
			LastFour:       input.Aadhaar[len(input.Aadhaar)-4:],
			Email:          input.Email,
			HashedPassword: hashedPassword,
			RegisteredAt:   nowFunc().Unix(),
		}

		err := u.uow.Do(ctx, func(txCtx context.Context) error {
			if err := u.userRepo.Create(txCtx, user); err != nil {
				return err
			}
			return u.otpRepo.DeleteByEmail(txCtx, input.Email)
		})
		if err == nil {
			metrics.OTPVerificationsTotal.WithLabelValues("confirmed").Inc()
			metrics.RegistrationsConfirmedTotal.Inc()
			return user, nil
		}
		if !errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, err
		}
		// duplicate key inside the tx: treat as a vid collision and regenerate
		logger.Warn(ctx, "VID collision, regenerating", zap.String("email", input.Email), zap.Int("attempt", attempt+1))
	}

	return nil, domainerrors.ErrVIDExhausted
}

// Cancel removes any pending code for the email. Always succeeds, whether or
// not a row existed.
func (u *RegistrationUsecase) Cancel(ctx context.Context, email string) error {
	return u.otpRepo.DeleteByEmail(ctx, email)
}

// issueOTP replaces the pending row and then attempts the mail. The row is
// committed before the send: a relay failure leaves it in place so the user
// can retry delivery with resend.
func (u *RegistrationUsecase) issueOTP(ctx context.Context, email string) error {
	code, err := crypto.GenerateOTP()
	if err != nil {
		return err
	}

	otp := &entities.PendingOTP{
		Email:      email,
		HashedOTP:  crypto.SHA256Hex(code),
		Expiration: nowFunc().Add(u.otpTTL).Unix(),
	}
	if err := u.otpRepo.Replace(ctx, otp); err != nil {
		return err
	}

	if err := u.mailer.SendOTP(email, code); err != nil {
		logger.Error(ctx, "Failed to send OTP mail", zap.String("email", email), zap.Error(err))
		return domainerrors.ErrMailDelivery
	}
	return nil
}

func validateProfile(input *entities.RegistrationInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.BadRequest("name is required")
	}
	if parsed, err := time.Parse(entities.DOBLayout, input.DOB); err != nil || parsed.Format(entities.DOBLayout) != input.DOB {
		return domainerrors.BadRequest("dob must be in YYYY-MM-DD format")
	}
	if !entities.Gender(input.Gender).Valid() {
		return domainerrors.BadRequest("gender must be one of male, female or other")
	}
	if !aadhaarPattern.MatchString(input.Aadhaar) {
		return domainerrors.BadRequest("aadhaar must be a 12-digit number")
	}
	return nil
}
