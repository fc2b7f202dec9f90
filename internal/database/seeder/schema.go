package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-match/internal/database"
)

var errSchemaMismatch = errors.New("schema mismatch")

// RequireColumns fails with every column of table that the current schema
// lacks. Seeding before migrating surfaces here instead of as a SQL error.
func RequireColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if q == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" || len(columns) == 0 {
		return fmt.Errorf("table and columns are required")
	}

	rows, err := q.Query(ctx,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = $1 AND column_name = ANY($2)`,
		table, columns,
	)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	present := make(map[string]struct{}, len(columns))
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		present[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, c := range columns {
		if _, ok := present[c]; !ok {
			missing = append(missing, table+"."+c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", errSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}
