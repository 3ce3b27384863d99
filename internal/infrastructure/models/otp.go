package models

// OTP is the pending one-time-codes table. Email is indexed but not unique;
// the flow keeps at most one active row per email by replacing prior rows.
type OTP struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Email      string `gorm:"type:varchar(255);index;not null"`
	HashedOTP  string `gorm:"column:hashed_otp;type:varchar(64);not null"`
	Expiration int64  `gorm:"not null"`
}

func (OTP) TableName() string {
	return "otps"
}
