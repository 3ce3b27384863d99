package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
	assert.Equal(t, "otps", OTP{}.TableName())
	assert.Equal(t, "liveness_checks", LivenessCheck{}.TableName())
}
