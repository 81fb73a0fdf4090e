package emit

import (
	"fmt"
	"go/token"
	"strings"
	"text/template"

	"itemgen/feature/registry"
)

// DefaultGenerator is the tool name written into the provenance header.
const DefaultGenerator = "itemgen"

// DefaultHeader is the provenance header template. It must render to Go line
// comments, carry the generated-code marker and place {{.Timestamp}} on a line of its own.
const DefaultHeader = `// Code generated by {{.Generator}}; DO NOT EDIT.
// This file was generated by robots at
// {{.Timestamp}}`

// Style controls how a registry is rendered.
type Style struct {
	// Package is used verbatim in the package clause.
	Package string `mapstructure:"package" default:"" validate:"required,goident"`
	// TypeName is the element type the declarations point to.
	TypeName string `mapstructure:"type_name" default:"Item" validate:"omitempty,goident"`
	// TableName is the variable holding the id-indexed lookup array.
	TableName string `mapstructure:"table_name" default:"items" validate:"omitempty,goident"`
	// AbsentMarker is the expression written into absent slots.
	AbsentMarker string `mapstructure:"absent_marker" default:"nil"`
	// Header is a text/template for the provenance header; empty means DefaultHeader.
	Header string `mapstructure:"header" default:""`
	// Generator is the tool name passed to the header template.
	Generator string `mapstructure:"generator" default:"itemgen"`
}

// withDefaults fills unset optional fields.
func (s Style) withDefaults() Style {
	if s.TypeName == "" {
		s.TypeName = "Item"
	}
	if s.TableName == "" {
		s.TableName = "items"
	}
	if s.AbsentMarker == "" {
		s.AbsentMarker = "nil"
	}
	if s.Header == "" {
		s.Header = DefaultHeader
	}
	if s.Generator == "" {
		s.Generator = DefaultGenerator
	}
	return s
}

// Validate checks that the style can produce a compilable file.
func (s Style) Validate() error {
	s = s.withDefaults()
	if !isIdent(s.Package) {
		return fmt.Errorf("package name %q is not a valid Go identifier", s.Package)
	}
	if !isIdent(s.TypeName) {
		return fmt.Errorf("type name %q is not a valid Go identifier", s.TypeName)
	}
	if !isIdent(s.TableName) {
		return fmt.Errorf("table name %q is not a valid Go identifier", s.TableName)
	}
	if strings.ContainsAny(s.AbsentMarker, "\n\r") {
		return fmt.Errorf("absent marker must be a single-line expression")
	}
	if _, err := template.New("header").Parse(s.Header); err != nil {
		return fmt.Errorf("invalid header template: %w", err)
	}
	return nil
}

// Reserved returns the exported symbols the generated file declares or
// refers to besides the item variables.
func (s Style) Reserved() []registry.Reserved {
	s = s.withDefaults()
	var reserved []registry.Reserved
	if token.IsExported(s.TypeName) {
		reserved = append(reserved, registry.Reserved{Identifier: s.TypeName, What: "item type"})
	}
	if token.IsExported(s.TableName) {
		reserved = append(reserved, registry.Reserved{Identifier: s.TableName, What: "lookup table"})
	}
	return reserved
}

func isIdent(name string) bool {
	return name != "_" && token.IsIdentifier(name)
}
