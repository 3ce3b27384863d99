package models

// User is the confirmed-users table. Identity values are bound immutably to
// a row; the only destructive path is the full database reset.
type User struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(100);not null"`
	DOB            string `gorm:"column:dob;type:varchar(10);not null"`
	Gender         string `gorm:"type:varchar(10);not null"`
	VID            string `gorm:"column:vid;type:varchar(16);uniqueIndex;not null"`
	HashedAadhaar  string `gorm:"type:varchar(64);uniqueIndex;not null"`
	LastFour       string `gorm:"type:varchar(4);not null"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	RegisteredAt   int64  `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
