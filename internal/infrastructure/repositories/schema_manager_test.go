package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaManager_Migrate(t *testing.T) {
	db := newTestDB(t)
	mgr := NewSchemaManager(db)
	ctx := context.Background()

	require.NoError(t, mgr.Migrate(ctx))

	for _, table := range []string{"users", "otps", "liveness_checks"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestSchemaManager_Reset_WipesData(t *testing.T) {
	db := newTestDB(t)
	mgr := NewSchemaManager(db)
	ctx := context.Background()
	require.NoError(t, mgr.Migrate(ctx))

	userRepo := NewUserRepository(db)
	otpRepo := NewOTPRepository(db)
	require.NoError(t, userRepo.Create(ctx, sampleUser("alice@example.com", "1234567890123456", "hash-a")))
	require.NoError(t, otpRepo.Replace(ctx, pendingOTP("bob@example.com", "hash-1", time.Now().Unix()+300)))

	require.NoError(t, mgr.Reset(ctx))

	users, err := userRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, users)

	otps, err := otpRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, otps)
}
