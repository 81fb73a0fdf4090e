package normalize

import (
	"fmt"

	"itemgen/core/utils"
)

// DefaultMaxID bounds ids so that a corrupt catalog cannot request a huge lookup table.
const DefaultMaxID = 1 << 20

// Item is a validated catalog record with its derived identifier.
type Item struct {
	// Identifier is the Go symbol generated for the item.
	Identifier string
	ID         int
	Name       string
	StackSize  int
	// Index is the position of the record in the dataset.
	Index int
}

// Options tune normalization.
type Options struct {
	// MaxID is the largest accepted id. Zero means DefaultMaxID.
	MaxID int
}

// Normalize validates each raw record and derives its identifier.
// The output preserves input order.
func Normalize(records []map[string]any, opts Options) ([]Item, error) {
	maxID := opts.MaxID
	if maxID <= 0 {
		maxID = DefaultMaxID
	}

	items := make([]Item, 0, len(records))
	for i, rec := range records {
		item, err := normalizeRecord(i, rec, maxID)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func normalizeRecord(index int, rec map[string]any, maxID int) (Item, error) {
	if rec == nil {
		return Item{}, &SchemaError{Index: index, Reason: "record is null"}
	}

	fail := func(field, reason string, id int, hasID bool) error {
		return &SchemaError{Index: index, ID: id, HasID: hasID, Field: field, Reason: reason}
	}

	raw, ok := rec[FieldID]
	if !ok {
		return Item{}, fail(FieldID, "missing", 0, false)
	}
	id, ok := utils.ToInt(raw)
	if !ok {
		return Item{}, fail(FieldID, fmt.Sprintf("expected integer, got %s", describe(raw)), 0, false)
	}
	if id < 0 {
		return Item{}, fail(FieldID, fmt.Sprintf("must be non-negative, got %d", id), id, true)
	}
	if id > maxID {
		return Item{}, fail(FieldID, fmt.Sprintf("exceeds the maximum id %d", maxID), id, true)
	}

	raw, ok = rec[FieldName]
	if !ok {
		return Item{}, fail(FieldName, "missing", id, true)
	}
	name, ok := utils.ToString(raw)
	if !ok {
		return Item{}, fail(FieldName, fmt.Sprintf("expected string, got %s", describe(raw)), id, true)
	}
	if name == "" {
		return Item{}, fail(FieldName, "must not be empty", id, true)
	}
	ident := Identifier(name)
	if ident == "" {
		return Item{}, fail(FieldName, fmt.Sprintf("%q has no letters or digits to derive an identifier from", name), id, true)
	}

	raw, ok = rec[FieldStackSize]
	if !ok {
		return Item{}, fail(FieldStackSize, "missing", id, true)
	}
	stackSize, ok := utils.ToInt(raw)
	if !ok {
		return Item{}, fail(FieldStackSize, fmt.Sprintf("expected integer, got %s", describe(raw)), id, true)
	}
	if stackSize < 1 {
		return Item{}, fail(FieldStackSize, fmt.Sprintf("must be positive, got %d", stackSize), id, true)
	}

	return Item{
		Identifier: ident,
		ID:         id,
		Name:       name,
		StackSize:  stackSize,
		Index:      index,
	}, nil
}

func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", v)
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%v", v)
	}
}
