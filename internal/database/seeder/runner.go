package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio-backend/internal/database"

	"github.com/charmbracelet/log"
)

var errNilDB = errors.New("seeder: nil database")

// Runner runs its seeders in order and stops at the first failure.
type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errNilDB
	}
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		started := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeded", "seeder", s.Name(), "elapsed", time.Since(started).Round(time.Millisecond))
	}
	return nil
}
