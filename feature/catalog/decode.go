package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"itemgen/feature/normalize"

	"github.com/goccy/go-json"
)

// Record is one raw catalog entry. Numbers are kept as json.Number.
type Record = map[string]any

// Decode parses a catalog document: a JSON array of objects.
// Syntax errors are a *FetchError; a well-formed document of the wrong shape is
// a *normalize.SchemaError.
func Decode(locator string, data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var top any
	if err := dec.Decode(&top); err != nil {
		return nil, newFetchError(locator, "malformed catalog", err)
	}
	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, newFetchError(locator, "malformed catalog", errors.New("unexpected data after the top-level array"))
	}

	elems, ok := top.([]any)
	if !ok {
		return nil, &normalize.SchemaError{Index: -1, Reason: fmt.Sprintf("expected a JSON array of records, got %s", kindOf(top))}
	}

	records := make([]Record, 0, len(elems))
	for i, elem := range elems {
		switch v := elem.(type) {
		case map[string]any:
			records = append(records, v)
		case nil:
			records = append(records, nil)
		default:
			return nil, &normalize.SchemaError{Index: i, Reason: fmt.Sprintf("expected an object, got %s", kindOf(elem))}
		}
	}
	return records, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
