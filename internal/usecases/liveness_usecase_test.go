package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"masked-aadhaar.backend/internal/domain/entities"
	"masked-aadhaar.backend/internal/usecases"
	"masked-aadhaar.backend/pkg/crypto"
)

const expectedPhrase = "the quick brown fox"

func newLivenessFixture() (*usecases.LivenessUsecase, *MockLivenessRepository) {
	repo := new(MockLivenessRepository)
	return usecases.NewLivenessUsecase(repo, expectedPhrase), repo
}

func TestVerifyVoice_MatchIgnoresCaseAndPunctuation(t *testing.T) {
	uc, repo := newLivenessFixture()

	var recorded *entities.LivenessCheck
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.LivenessCheck")).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*entities.LivenessCheck) }).
		Return(nil)

	result, err := uc.VerifyVoice(context.Background(), &entities.VoiceInput{
		Email:      "asha@example.com",
		Transcript: "  The QUICK, brown fox!  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "passed", result.Status)

	require.NotNil(t, recorded)
	assert.Equal(t, entities.LivenessVoice, recorded.Kind)
	assert.True(t, recorded.Passed)
	assert.Equal(t, "asha@example.com", recorded.Email.String)
	assert.True(t, recorded.Email.Valid)
}

func TestVerifyVoice_Mismatch(t *testing.T) {
	uc, repo := newLivenessFixture()

	var recorded *entities.LivenessCheck
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*entities.LivenessCheck) }).
		Return(nil)

	result, err := uc.VerifyVoice(context.Background(), &entities.VoiceInput{Transcript: "a lazy dog"})
	require.NoError(t, err)
	assert.Equal(t, "failed", result.Status)

	require.NotNil(t, recorded)
	assert.False(t, recorded.Passed)
	// anonymous attempt: email stays null
	assert.False(t, recorded.Email.Valid)
}

func TestVerifyVoice_AuditFailureDoesNotBlockVerdict(t *testing.T) {
	uc, repo := newLivenessFixture()

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	result, err := uc.VerifyVoice(context.Background(), &entities.VoiceInput{Transcript: expectedPhrase})
	require.NoError(t, err)
	assert.Equal(t, "passed", result.Status)
}

func TestVerifyCaptcha(t *testing.T) {
	uc, repo := newLivenessFixture()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.VerifyCaptcha(context.Background(), &entities.CaptchaInput{
		Challenge: crypto.SHA256Hex("7"),
		Answer:    "7",
	})
	require.NoError(t, err)
	assert.Equal(t, "passed", result.Status)

	result, err = uc.VerifyCaptcha(context.Background(), &entities.CaptchaInput{
		Challenge: crypto.SHA256Hex("7"),
		Answer:    "8",
	})
	require.NoError(t, err)
	assert.Equal(t, "failed", result.Status)
}

func TestNewChallenge_VerifiableAnswer(t *testing.T) {
	uc, _ := newLivenessFixture()

	challenge, err := uc.NewChallenge()
	require.NoError(t, err)
	assert.Regexp(t, `^What is [1-9] \+ [1-9]\?$`, challenge.Question)
	assert.Len(t, challenge.Challenge, 64)
}

func TestListRecent(t *testing.T) {
	uc, repo := newLivenessFixture()

	rows := []*entities.LivenessCheck{{ID: 2, Kind: entities.LivenessCaptcha, Passed: true}}
	repo.On("ListRecent", mock.Anything, 10).Return(rows, nil)

	got, err := uc.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
