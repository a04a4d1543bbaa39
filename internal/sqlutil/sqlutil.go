// Package sqlutil has the small database/sql helpers the journal queries
// share.
package sqlutil

import (
	"database/sql"
	"strings"
)

// InClauseArgs builds the "?" placeholder list and argument slice for an
// IN clause over items. An empty items yields "NULL", so the clause
// matches no row instead of being a syntax error.
func InClauseArgs(items []string) (placeholders string, args []any) {
	if len(items) == 0 {
		return "NULL", nil
	}
	args = make([]any, len(items))
	for i, item := range items {
		args[i] = item
	}
	return strings.TrimSuffix(strings.Repeat("?, ", len(items)), ", "), args
}

// ScanRows drains rows through scan, closing them either way.
func ScanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
