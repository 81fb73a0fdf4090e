package database

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ColumnInfo matches the output of SHOW COLUMNS
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // NULL default is possible
	Extra   string
}

// ValidTableName reports whether name is safe to interpolate into a query.
func ValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if !ValidTableName(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	var columns []ColumnInfo
	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	// Normalize names and types to lowercase
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// MissingColumns returns the required column names absent from columns, in the order given.
func MissingColumns(columns []ColumnInfo, required ...string) []string {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col.Field] = true
	}

	var missing []string
	for _, name := range required {
		if !present[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing
}
