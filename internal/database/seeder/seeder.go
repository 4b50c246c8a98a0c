package seeder

import (
	"context"

	"portfolio-backend/internal/database"
)

// Seeder loads reference rows after the migrations have run. Implementations
// must be idempotent: the server runs them on every start when DB_RUN_SEEDERS
// is set.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
