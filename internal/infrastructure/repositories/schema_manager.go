package repositories

import (
	"context"

	"gorm.io/gorm"
	"masked-aadhaar.backend/internal/infrastructure/models"
)

// SchemaManager handles schema lifecycle for the embedded store
type SchemaManager struct {
	db *gorm.DB
}

// NewSchemaManager creates a new schema manager
func NewSchemaManager(db *gorm.DB) *SchemaManager {
	return &SchemaManager{db: db}
}

// Migrate creates or updates all tables
func (s *SchemaManager) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.OTP{},
		&models.LivenessCheck{},
	)
}

// Reset drops and recreates the entire store. Destructive by design: this
// backs POST /reset-database.
func (s *SchemaManager) Reset(ctx context.Context) error {
	err := s.db.WithContext(ctx).Migrator().DropTable(
		&models.User{},
		&models.OTP{},
		&models.LivenessCheck{},
	)
	if err != nil {
		return err
	}
	return s.Migrate(ctx)
}
