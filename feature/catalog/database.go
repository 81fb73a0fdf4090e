package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"itemgen/core/database"
	"itemgen/feature/normalize"

	"github.com/goccy/go-json"
)

// Columns read from a catalog table, keyed by the record field they feed.
var tableColumns = []struct {
	Column string
	Field  string
}{
	{"id", normalize.FieldID},
	{"name", normalize.FieldName},
	{"stack_size", normalize.FieldStackSize},
}

// itemRow is one row of a catalog table.
type itemRow struct {
	ID        sql.NullInt64
	Name      sql.NullString
	StackSize sql.NullInt64
}

// tableRecord is the JSON catalog form of an itemRow; NULL columns become null.
type tableRecord struct {
	ID        *int64  `json:"id"`
	Name      *string `json:"name"`
	StackSize *int64  `json:"stackSize"`
}

// fetchDatabase reads a catalog table ordered by id and encodes it as a JSON catalog.
func (r *Router) fetchDatabase(ctx context.Context, locator string) ([]byte, error) {
	if r.db == nil {
		return nil, &FetchError{Locator: locator, Reason: "database is not configured"}
	}

	table := strings.TrimPrefix(locator, "db:")
	if !database.ValidTableName(table) {
		return nil, &FetchError{Locator: locator, Reason: fmt.Sprintf("invalid table name %q", table)}
	}

	db := r.db.WithContext(ctx)

	columns, err := database.GetTableColumns(db, table)
	if err != nil {
		return nil, newFetchError(locator, "inspect table", err)
	}
	if len(columns) == 0 {
		return nil, &FetchError{Locator: locator, Reason: fmt.Sprintf("table %s not found", table)}
	}
	for _, tc := range tableColumns {
		if missing := database.MissingColumns(columns, tc.Column); len(missing) > 0 {
			return nil, &normalize.SchemaError{
				Index:  -1,
				Field:  tc.Field,
				Reason: fmt.Sprintf("table %s has no column %s", table, tc.Column),
			}
		}
	}

	var rows []itemRow
	err = db.Table(table).
		Select("id", "name", "stack_size").
		Order("id").
		Scan(&rows).Error
	if err != nil {
		return nil, newFetchError(locator, "query failed", err)
	}

	records := make([]tableRecord, 0, len(rows))
	for _, row := range rows {
		var rec tableRecord
		if row.ID.Valid {
			rec.ID = &row.ID.Int64
		}
		if row.Name.Valid {
			rec.Name = &row.Name.String
		}
		if row.StackSize.Valid {
			rec.StackSize = &row.StackSize.Int64
		}
		records = append(records, rec)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, newFetchError(locator, "encode rows", err)
	}
	return data, nil
}
