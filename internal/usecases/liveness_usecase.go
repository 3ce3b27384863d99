package usecases

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"masked-aadhaar.backend/internal/domain/entities"
	"masked-aadhaar.backend/internal/domain/repositories"
	"masked-aadhaar.backend/pkg/crypto"
	"masked-aadhaar.backend/pkg/logger"
)

// LivenessUsecase verifies the auxiliary voice and captcha probes. The
// verdict is stateless; failing a probe never blocks registration. Every
// attempt leaves an audit row.
type LivenessUsecase struct {
	repo           repositories.LivenessRepository
	expectedPhrase string
}

func NewLivenessUsecase(repo repositories.LivenessRepository, expectedPhrase string) *LivenessUsecase {
	return &LivenessUsecase{repo: repo, expectedPhrase: expectedPhrase}
}

// VerifyVoice passes iff the transcript matches the configured phrase once
// case and punctuation are stripped.
func (u *LivenessUsecase) VerifyVoice(ctx context.Context, input *entities.VoiceInput) (*entities.LivenessResult, error) {
	passed := normalizePhrase(input.Transcript) == normalizePhrase(u.expectedPhrase)
	u.audit(ctx, input.Email, entities.LivenessVoice, passed)

	if !passed {
		return &entities.LivenessResult{Status: "failed", Message: "Voice verification failed. Please try again."}, nil
	}
	return &entities.LivenessResult{Status: "passed", Message: "Voice verification successful."}, nil
}

// VerifyCaptcha passes iff the hash of the answer matches the challenge
// token that was issued with the form.
func (u *LivenessUsecase) VerifyCaptcha(ctx context.Context, input *entities.CaptchaInput) (*entities.LivenessResult, error) {
	passed := crypto.SHA256Hex(input.Answer) == input.Challenge
	u.audit(ctx, input.Email, entities.LivenessCaptcha, passed)

	if !passed {
		return &entities.LivenessResult{Status: "failed", Message: "Captcha verification failed."}, nil
	}
	return &entities.LivenessResult{Status: "passed", Message: "Captcha verification successful."}, nil
}

// NewChallenge issues a fresh arithmetic captcha. The token is the hash of
// the expected answer, so verification needs no server-side state.
func (u *LivenessUsecase) NewChallenge() (*entities.CaptchaChallenge, error) {
	a, err := randomDigit()
	if err != nil {
		return nil, err
	}
	b, err := randomDigit()
	if err != nil {
		return nil, err
	}
	answer := strconv.Itoa(a + b)
	return &entities.CaptchaChallenge{
		Question:  fmt.Sprintf("What is %d + %d?", a, b),
		Challenge: crypto.SHA256Hex(answer),
	}, nil
}

func randomDigit() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 1, nil
}

// ListRecent returns the newest audit rows for the admin listing
func (u *LivenessUsecase) ListRecent(ctx context.Context, limit int) ([]*entities.LivenessCheck, error) {
	return u.repo.ListRecent(ctx, limit)
}

// audit records the attempt; a write failure is logged and swallowed since
// the verdict already stands.
func (u *LivenessUsecase) audit(ctx context.Context, email string, kind entities.LivenessKind, passed bool) {
	check := &entities.LivenessCheck{
		Email:     null.NewString(email, email != ""),
		Kind:      kind,
		Passed:    passed,
		CreatedAt: time.Now().Unix(),
	}
	if err := u.repo.Create(ctx, check); err != nil {
		logger.Warn(ctx, "Failed to record liveness check", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// normalizePhrase lowercases and keeps only letters, digits and single
// spaces so "Hello, World!" equals "hello world".
func normalizePhrase(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) && !lastSpace:
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}
