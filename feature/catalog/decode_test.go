package catalog_test

import (
	"encoding/json"
	"errors"
	"testing"

	"itemgen/feature/catalog"
	"itemgen/feature/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	data := []byte(`[
		{"id": 1, "name": "stick", "stackSize": 64, "displayName": "Stick"},
		{"id": 5, "name": "diamond_pickaxe", "stackSize": 1}
	]`)

	records, err := catalog.Decode("items.json", data)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, json.Number("1"), records[0]["id"])
	assert.Equal(t, "stick", records[0]["name"])
	assert.Equal(t, json.Number("64"), records[0]["stackSize"])
	assert.Equal(t, "Stick", records[0]["displayName"])
	assert.Equal(t, "diamond_pickaxe", records[1]["name"])
}

func TestDecode_Empty(t *testing.T) {
	records, err := catalog.Decode("items.json", []byte(" [ ] \n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecode_NullElement(t *testing.T) {
	records, err := catalog.Decode("items.json", []byte(`[null]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0])
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Truncated", `[{"id": 1, "name": "stick"`},
		{"Garbage", `<html>rate limited</html>`},
		{"Empty", ``},
		{"TrailingData", `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode("https://example.com/items.json", []byte(tt.data))
			require.Error(t, err)

			var fetchErr *catalog.FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, "malformed catalog", fetchErr.Reason)
			assert.Equal(t, "https://example.com/items.json", fetchErr.Locator)
		})
	}
}

func TestDecode_WrongShape(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		index int
	}{
		{"Object", `{"items": []}`, -1},
		{"Number", `42`, -1},
		{"StringElement", `[{"id": 0, "name": "air", "stackSize": 64}, "stone"]`, 1},
		{"ArrayElement", `[[1, "stone", 64]]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode("items.json", []byte(tt.data))
			require.Error(t, err)

			var schemaErr *normalize.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.index, schemaErr.Index)
		})
	}
}
