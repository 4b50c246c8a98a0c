package seeder

import (
	"context"
	"fmt"
	"strings"

	"portfolio-backend/internal/database"
)

// RequireColumns fails when table, in the current schema, lacks any of
// columns. Every missing column is named in the error.
func RequireColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if q == nil {
		return errNilDB
	}
	if table == "" || len(columns) == 0 {
		return fmt.Errorf("seeder: table and columns are required")
	}

	rows, err := q.Query(ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1`,
		table,
	)
	if err != nil {
		return fmt.Errorf("inspect %s columns: %w", table, err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %s; run the migrations before seeding", table, strings.Join(missing, ", "))
	}
	return nil
}
