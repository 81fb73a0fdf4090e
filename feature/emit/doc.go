// Package emit renders a registry as a Go source file.
//
// The file starts with a provenance header carrying the standard
// "Code generated ... DO NOT EDIT." marker and a generation timestamp, followed
// by the package clause, one pointer variable per item, and an array indexed by
// id:
//
//	var Stick = &Item{
//		ID:        1,
//		Name:      "stick",
//		StackSize: 64,
//	}
//
//	var items = [...]*Item{
//		0: nil,
//		1: Stick,
//	}
//
// The Item type itself is declared by the consuming package. Names are written
// as quoted Go string literals and the result is gofmt-formatted, which also
// proves that it parses.
//
// Mask and Equivalent compare generated files while ignoring the timestamp.
package emit
