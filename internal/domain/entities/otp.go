package entities

import "time"

// OTPTTL is the validity window of an issued one-time code
const OTPTTL = 300 * time.Second

// PendingOTP is a provisional, not-yet-committed claim on an email address.
// At most one active row per email is intended; the flow enforces this by
// deleting prior rows before inserting, not by a database constraint.
type PendingOTP struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	HashedOTP  string `json:"-"`
	Expiration int64  `json:"expiration"`
}

// ExpiredAt reports whether the code is past its window at the given instant
func (p *PendingOTP) ExpiredAt(now time.Time) bool {
	return now.Unix() >= p.Expiration
}

// RemainingAt returns the seconds left until expiry, or 0 if already expired
func (p *PendingOTP) RemainingAt(now time.Time) int64 {
	remaining := p.Expiration - now.Unix()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// OTPStatus is the check-otp probe result
type OTPStatus struct {
	OTPExists     bool  `json:"otpExists"`
	RemainingTime int64 `json:"remainingTime"`
}
