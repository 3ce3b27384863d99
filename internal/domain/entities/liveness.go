package entities

import "github.com/volatiletech/null/v8"

// LivenessKind distinguishes the auxiliary liveness probes
type LivenessKind string

const (
	LivenessVoice   LivenessKind = "voice"
	LivenessCaptcha LivenessKind = "captcha"
)

// LivenessCheck is an audit record of a voice or captcha probe. Email is
// null for anonymous attempts.
type LivenessCheck struct {
	ID        int64        `json:"id"`
	Email     null.String  `json:"email,omitempty"`
	Kind      LivenessKind `json:"kind"`
	Passed    bool         `json:"passed"`
	CreatedAt int64        `json:"createdAt"`
}

// VoiceInput carries a client-side transcript of the spoken phrase
type VoiceInput struct {
	Email      string `json:"email" binding:"omitempty,email"`
	Transcript string `json:"transcript" binding:"required"`
}

// CaptchaInput carries the challenge token and the user's answer
type CaptchaInput struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Challenge string `json:"challenge" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
}

// CaptchaChallenge is a freshly issued arithmetic challenge. The token
// embeds the hashed answer so verification is stateless.
type CaptchaChallenge struct {
	Question  string `json:"question"`
	Challenge string `json:"challenge"`
}

// LivenessResult is the stateless pass/fail verdict
type LivenessResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
