package repositories

import "context"

// UnitOfWork executes a function within a single transaction scope.
// Repository calls made with the context passed to fn share that transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// StoreManager covers schema lifecycle: startup migration and the destructive
// full reset behind POST /reset-database.
type StoreManager interface {
	Migrate(ctx context.Context) error
	Reset(ctx context.Context) error
}
