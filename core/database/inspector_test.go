package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "INT(11)", "NO", "PRI", nil, "").
		AddRow("name", "VARCHAR(64)", "NO", "", nil, "").
		AddRow("stack_size", "TINYINT", "NO", "", "64", "")
	mock.ExpectQuery("SHOW COLUMNS FROM `items`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "items")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "int(11)", colMap["id"])
	assert.Equal(t, "varchar(64)", colMap["name"])
	assert.Equal(t, "tinyint", colMap["stack_size"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_InvalidName(t *testing.T) {
	db, mock := setupMockDB(t)

	_, err := GetTableColumns(db, "items; DROP TABLE items")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	columns := []ColumnInfo{{Field: "id"}, {Field: "name"}}

	assert.Empty(t, MissingColumns(columns, "id", "name"))
	assert.Equal(t, []string{"stack_size"}, MissingColumns(columns, "id", "stack_size", "name"))
}
