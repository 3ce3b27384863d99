package entities

// UserInfo is the trimmed per-user row for the admin listing
type UserInfo struct {
	Email         string `json:"email"`
	RegisteredAt  string `json:"registeredAt"`
	HashedAadhaar string `json:"hashedAadhaar"`
}

// PendingOTPView is a pending row with its remaining lifetime in seconds
type PendingOTPView struct {
	Email         string `json:"email"`
	RemainingTime int64  `json:"remainingTime"`
}
