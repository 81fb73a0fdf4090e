// Package normalize turns raw catalog records into validated items.
//
// Each record must carry an integer "id" (non-negative), a non-empty string
// "name" and a positive integer "stackSize"; other fields are ignored. A record
// that breaks this shape fails the whole run with a *SchemaError that names the
// record position, its id when known, and the field.
//
// # Identifiers
//
// Identifier derives the Go symbol for an item from its catalog name by
// splitting on separators and upper-casing the first letter of each segment:
//
//	normalize.Identifier("diamond_pickaxe") // "DiamondPickaxe"
//	normalize.Identifier("foo-bar")         // "FooBar"
//	normalize.Identifier("1_up")            // "Item1Up"
//
// It is a pure function and the only source of generated symbol names.
package normalize
