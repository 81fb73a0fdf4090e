package registry

import (
	"fmt"

	"itemgen/feature/normalize"
)

// CollisionError reports two catalog entries that derive the same Go identifier,
// or an entry whose identifier clashes with a reserved generated symbol.
type CollisionError struct {
	Identifier string
	First      normalize.Item
	// Second is the zero Item when the clash is with Reserved.
	Second   normalize.Item
	Reserved string
}

func (e *CollisionError) Error() string {
	if e.Reserved != "" {
		return fmt.Sprintf("identifier collision: %q (id %d) derives %s, which is reserved for the generated %s",
			e.First.Name, e.First.ID, e.Identifier, e.Reserved)
	}
	return fmt.Sprintf("identifier collision: %q (id %d) and %q (id %d) both derive %s",
		e.First.Name, e.First.ID, e.Second.Name, e.Second.ID, e.Identifier)
}

// Kind returns the error kind tag.
func (e *CollisionError) Kind() string { return "collision" }

// DuplicateIDError reports two catalog entries sharing a numeric id.
type DuplicateIDError struct {
	ID     int
	First  normalize.Item
	Second normalize.Item
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate id %d: %q (record %d) and %q (record %d)",
		e.ID, e.First.Name, e.First.Index, e.Second.Name, e.Second.Index)
}

// Kind returns the error kind tag.
func (e *DuplicateIDError) Kind() string { return "duplicate_id" }
