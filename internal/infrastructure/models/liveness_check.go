package models

import "github.com/volatiletech/null/v8"

// LivenessCheck is the audit log of voice/captcha probes.
type LivenessCheck struct {
	ID        int64       `gorm:"primaryKey;autoIncrement"`
	Email     null.String `gorm:"type:varchar(255)"`
	Kind      string      `gorm:"type:varchar(16);not null"`
	Passed    bool        `gorm:"not null"`
	CreatedAt int64       `gorm:"not null"`
}

func (LivenessCheck) TableName() string {
	return "liveness_checks"
}
