package emit

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/template"
	"time"

	"itemgen/feature/registry"

	"golang.org/x/tools/imports"
)

// generatedMarker is the convention tools use to recognize generated Go files.
var generatedMarker = regexp.MustCompile(`(?m)^// Code generated .* DO NOT EDIT\.$`)

// timestampPattern matches the RFC 3339 timestamps written by Emit.
var timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})`)

// MaskedTimestamp replaces the provenance timestamp in Mask.
const MaskedTimestamp = "<timestamp>"

type headerData struct {
	Generator string
	Timestamp string
}

// Emit renders reg as a gofmt-formatted Go source file.
//
// The output is: provenance header, package clause, one variable per item in
// dataset order, and the lookup array covering ids 0..max(id) with absent slots
// written as the style's AbsentMarker. For a fixed registry and style only the
// timestamp line depends on now.
func Emit(reg *registry.Registry, style Style, now time.Time) ([]byte, error) {
	if err := style.Validate(); err != nil {
		return nil, &EmitError{Reason: "invalid style", Err: err}
	}
	style = style.withDefaults()

	if err := reg.Verify(); err != nil {
		return nil, &EmitError{Reason: "registry invariant violated", Err: err}
	}

	header, err := renderHeader(style, now)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", style.Package)

	for _, item := range reg.Items {
		fmt.Fprintf(&buf, "var %s = &%s{\n", item.Identifier, style.TypeName)
		fmt.Fprintf(&buf, "\tID:        %d,\n", item.ID)
		fmt.Fprintf(&buf, "\tName:      %s,\n", strconv.Quote(item.Name))
		fmt.Fprintf(&buf, "\tStackSize: %d,\n", item.StackSize)
		buf.WriteString("}\n")
	}
	if reg.Len() > 0 {
		buf.WriteString("\n")
	}

	writeTable(&buf, reg, style)

	out, err := imports.Process("generated.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, &EmitError{Reason: "generated source does not parse", Err: err}
	}
	return out, nil
}

func writeTable(buf *bytes.Buffer, reg *registry.Registry, style Style) {
	if reg.Size() == 0 {
		fmt.Fprintf(buf, "var %s = [...]*%s{}\n", style.TableName, style.TypeName)
		return
	}

	fmt.Fprintf(buf, "var %s = [...]*%s{\n", style.TableName, style.TypeName)
	// Keys are padded the way gofmt aligns them
	width := len(strconv.Itoa(reg.Size()-1)) + 1
	for i, slot := range reg.Table {
		value := style.AbsentMarker
		if slot != nil {
			value = slot.Identifier
		}
		key := strconv.Itoa(i) + ":"
		fmt.Fprintf(buf, "\t%-*s %s,\n", width, key, value)
	}
	buf.WriteString("}\n")
}

func renderHeader(style Style, now time.Time) (string, error) {
	tmpl, err := template.New("header").Option("missingkey=error").Parse(style.Header)
	if err != nil {
		return "", &EmitError{Reason: "invalid header template", Err: err}
	}

	stamp := now.UTC().Format(time.RFC3339)
	var sb strings.Builder
	if err := tmpl.Execute(&sb, headerData{Generator: style.Generator, Timestamp: stamp}); err != nil {
		return "", &EmitError{Reason: "render header", Err: err}
	}

	header := strings.TrimRight(sb.String(), "\n")
	for _, line := range strings.Split(header, "\n") {
		if !strings.HasPrefix(line, "//") {
			return "", &EmitError{Reason: fmt.Sprintf("header line %q is not a line comment", line)}
		}
	}
	if !generatedMarker.MatchString(header) {
		return "", &EmitError{Reason: "header lacks the \"// Code generated ... DO NOT EDIT.\" marker"}
	}
	if n := strings.Count(header, stamp); n != 1 {
		return "", &EmitError{Reason: fmt.Sprintf("header must contain the timestamp exactly once, found %d", n)}
	}
	return header, nil
}

// Mask replaces the provenance timestamp in the header of src with MaskedTimestamp.
// Only comment lines before the package clause are touched.
func Mask(src []byte) []byte {
	lines := bytes.SplitAfter(src, []byte("\n"))
	for i, line := range lines {
		if !bytes.HasPrefix(line, []byte("//")) {
			if bytes.HasPrefix(line, []byte("package ")) {
				break
			}
			continue
		}
		lines[i] = timestampPattern.ReplaceAll(line, []byte(MaskedTimestamp))
	}
	return bytes.Join(lines, nil)
}

// Equivalent reports whether a and b differ at most in their provenance timestamp.
func Equivalent(a, b []byte) bool {
	return bytes.Equal(Mask(a), Mask(b))
}
