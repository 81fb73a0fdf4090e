// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections from the
// application's configuration. A catalog may be read from a database table
// (locator "db:<table>") instead of a JSON document.
//
// # Schema Inspection
//
// Before reading a catalog table the generator verifies that the table has the
// columns it needs, so that a schema drift is reported as a schema error naming
// the missing column instead of as an opaque SQL failure.
//
// # Usage
//
//	db, err := database.Connect(ctx, cfg.Database)
//	columns, err := database.GetTableColumns(db, "items")
//	missing := database.MissingColumns(columns, "id", "name", "stack_size")
package database
