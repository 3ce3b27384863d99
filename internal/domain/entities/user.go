package entities

import "time"

// Gender is the closed set of accepted gender values
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is a member of the closed set
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// DOBLayout is the required date-of-birth format
const DOBLayout = "2006-01-02"

// User is a confirmed registration. Rows are created exactly once, at
// successful OTP verification, and never updated afterwards.
type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DOB            string `json:"dob"`
	Gender         Gender `json:"gender"`
	VID            string `json:"vid"`
	HashedAadhaar  string `json:"hashedAadhaar"`
	LastFour       string `json:"-"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"`
	RegisteredAt   int64  `json:"registeredAt"`
}

// RegisteredTime returns the registration timestamp as a time.Time
func (u *User) RegisteredTime() time.Time {
	return time.Unix(u.RegisteredAt, 0)
}

// RegistrationInput carries the profile fields submitted at registration
// start. The same fields are re-submitted at verification time; pending
// registrations do not persist them server-side.
type RegistrationInput struct {
	Email    string `json:"email" binding:"required,email"`
	Aadhaar  string `json:"aadhaar" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
}

// VerifyInput is a RegistrationInput plus the submitted one-time code
type VerifyInput struct {
	RegistrationInput
	OTP string `json:"otp" binding:"required"`
}

// EmailInput addresses a pending registration by email only
type EmailInput struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	SessionID    string `json:"sessionId,omitempty"`
}
