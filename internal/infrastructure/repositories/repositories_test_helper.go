package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		dob TEXT NOT NULL,
		gender TEXT NOT NULL,
		vid TEXT NOT NULL UNIQUE,
		hashed_aadhaar TEXT NOT NULL UNIQUE,
		last_four TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		registered_at INTEGER NOT NULL
	);`)
}

func createOTPTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otps (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL,
		hashed_otp TEXT NOT NULL,
		expiration INTEGER NOT NULL
	);`)
	mustExec(t, db, `CREATE INDEX idx_otps_email ON otps(email);`)
}

func createLivenessTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE liveness_checks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT,
		kind TEXT NOT NULL,
		passed BOOLEAN NOT NULL,
		created_at INTEGER NOT NULL
	);`)
}
