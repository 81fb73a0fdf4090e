package emit_test

import (
	"errors"
	"go/parser"
	"go/token"
	"testing"
	"time"

	"itemgen/feature/emit"
	"itemgen/feature/normalize"
	"itemgen/feature/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func buildRegistry(t *testing.T, items ...normalize.Item) *registry.Registry {
	t.Helper()
	reg, err := registry.Build(items)
	require.NoError(t, err)
	return reg
}

func item(id int, name string, stackSize int) normalize.Item {
	return normalize.Item{Identifier: normalize.Identifier(name), ID: id, Name: name, StackSize: stackSize}
}

func TestEmit(t *testing.T) {
	reg := buildRegistry(t, item(1, "stick", 64), item(5, "diamond_pickaxe", 1))

	out, err := emit.Emit(reg, emit.Style{Package: "item"}, frozen)
	require.NoError(t, err)

	want := `// Code generated by itemgen; DO NOT EDIT.
// This file was generated by robots at
// 2026-01-02T03:04:05Z

package item

var Stick = &Item{
	ID:        1,
	Name:      "stick",
	StackSize: 64,
}
var DiamondPickaxe = &Item{
	ID:        5,
	Name:      "diamond_pickaxe",
	StackSize: 1,
}

var items = [...]*Item{
	0: nil,
	1: Stick,
	2: nil,
	3: nil,
	4: nil,
	5: DiamondPickaxe,
}
`
	assert.Equal(t, want, string(out))
}

func TestEmit_Empty(t *testing.T) {
	reg := buildRegistry(t)

	out, err := emit.Emit(reg, emit.Style{Package: "item"}, frozen)
	require.NoError(t, err)

	want := `// Code generated by itemgen; DO NOT EDIT.
// This file was generated by robots at
// 2026-01-02T03:04:05Z

package item

var items = [...]*Item{}
`
	assert.Equal(t, want, string(out))
}

func TestEmit_CustomStyle(t *testing.T) {
	reg := buildRegistry(t, item(2, "stone", 64))

	style := emit.Style{
		Package:      "catalog",
		TypeName:     "Entry",
		TableName:    "byID",
		AbsentMarker: "Missing",
		Header:       "// Code generated by {{.Generator}}; DO NOT EDIT.\n// Generated at {{.Timestamp}}",
		Generator:    "make items",
	}
	out, err := emit.Emit(reg, style, frozen)
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, "// Code generated by make items; DO NOT EDIT.\n// Generated at 2026-01-02T03:04:05Z\n\npackage catalog\n")
	assert.Contains(t, src, "var Stone = &Entry{")
	assert.Contains(t, src, "var byID = [...]*Entry{\n\t0: Missing,\n\t1: Missing,\n\t2: Stone,\n}")
}

func TestEmit_EscapesNames(t *testing.T) {
	reg := buildRegistry(t, item(0, `quote"back\slash`, 1), item(1, "tab\tnew\nline", 1))

	out, err := emit.Emit(reg, emit.Style{Package: "item"}, frozen)
	require.NoError(t, err)

	assert.Contains(t, string(out), `Name:      "quote\"back\\slash",`)
	assert.Contains(t, string(out), `Name:      "tab\tnew\nline",`)

	_, err = parser.ParseFile(token.NewFileSet(), "items.go", out, parser.AllErrors)
	assert.NoError(t, err)
}

func TestEmit_WideTableParses(t *testing.T) {
	reg := buildRegistry(t, item(0, "air", 64), item(10, "sand", 64), item(100, "gravel", 64))

	out, err := emit.Emit(reg, emit.Style{Package: "item"}, frozen)
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "items.go", out, 0)
	require.NoError(t, err)
	assert.Equal(t, "item", f.Name.Name)
	assert.Contains(t, string(out), "100: Gravel,")
}

func TestEmit_Deterministic(t *testing.T) {
	reg := buildRegistry(t, item(3, "stone", 64), item(1, "granite", 64), item(9, "ender_pearl", 16))
	style := emit.Style{Package: "item"}

	first, err := emit.Emit(reg, style, frozen)
	require.NoError(t, err)
	second, err := emit.Emit(reg, style, frozen)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	later, err := emit.Emit(reg, style, frozen.Add(36*time.Hour))
	require.NoError(t, err)
	assert.NotEqual(t, first, later)
	assert.True(t, emit.Equivalent(first, later))
}

func TestEmit_Errors(t *testing.T) {
	reg := buildRegistry(t, item(1, "stick", 64))

	tests := []struct {
		name   string
		style  emit.Style
		reason string
	}{
		{"MissingPackage", emit.Style{}, "invalid style"},
		{"BadPackage", emit.Style{Package: "my-items"}, "invalid style"},
		{"BlankPackage", emit.Style{Package: "_"}, "invalid style"},
		{"BadTypeName", emit.Style{Package: "item", TypeName: "*Item"}, "invalid style"},
		{"BadTemplate", emit.Style{Package: "item", Header: "// {{.Timestamp"}, "invalid style"},
		{"NoMarker", emit.Style{Package: "item", Header: "// built at {{.Timestamp}}"}, "DO NOT EDIT"},
		{"NoTimestamp", emit.Style{Package: "item", Header: "// Code generated by x; DO NOT EDIT."}, "timestamp exactly once"},
		{"NotAComment", emit.Style{Package: "item", Header: "// Code generated by x; DO NOT EDIT.\n{{.Timestamp}}"}, "not a line comment"},
		{"UnknownField", emit.Style{Package: "item", Header: "// Code generated by {{.Tool}}; DO NOT EDIT."}, "render header"},
		{"BadAbsentMarker", emit.Style{Package: "item", AbsentMarker: "nil nil"}, "does not parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Slot 0 is absent so the marker is rendered
			out, err := emit.Emit(reg, tt.style, frozen)
			require.Error(t, err)
			assert.Nil(t, out)

			var emitErr *emit.EmitError
			require.True(t, errors.As(err, &emitErr))
			assert.Equal(t, "emit", emitErr.Kind())
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestEmit_BrokenRegistry(t *testing.T) {
	stone := item(1, "stone", 64)
	reg := &registry.Registry{Items: []normalize.Item{stone}, Table: []*normalize.Item{&stone}}

	_, err := emit.Emit(reg, emit.Style{Package: "item"}, frozen)
	var emitErr *emit.EmitError
	require.True(t, errors.As(err, &emitErr))
	assert.Contains(t, err.Error(), "registry invariant violated")
}

func TestStyle_Reserved(t *testing.T) {
	reserved := emit.Style{Package: "item"}.Reserved()
	require.Len(t, reserved, 1)
	assert.Equal(t, "Item", reserved[0].Identifier)

	reserved = emit.Style{Package: "item", TableName: "Items"}.Reserved()
	require.Len(t, reserved, 2)
	assert.Equal(t, "Items", reserved[1].Identifier)
}

func TestMask(t *testing.T) {
	src := []byte("// Code generated by itemgen; DO NOT EDIT.\n// 2026-01-02T03:04:05Z\n\npackage item\n\nvar Clock = \"2026-01-02T03:04:05Z\"\n")

	masked := string(emit.Mask(src))
	assert.Contains(t, masked, "// <timestamp>\n")
	// Body is left alone
	assert.Contains(t, masked, `var Clock = "2026-01-02T03:04:05Z"`)
}

func TestEquivalent(t *testing.T) {
	a := []byte("// Code generated by itemgen; DO NOT EDIT.\n// 2026-01-02T03:04:05Z\n\npackage item\n")
	b := []byte("// Code generated by itemgen; DO NOT EDIT.\n// 2027-06-30T23:59:59+02:00\n\npackage item\n")
	c := []byte("// Code generated by itemgen; DO NOT EDIT.\n// 2026-01-02T03:04:05Z\n\npackage items\n")

	assert.True(t, emit.Equivalent(a, b))
	assert.False(t, emit.Equivalent(a, c))
}
