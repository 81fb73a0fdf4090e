package normalize

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IdentifierPrefix is prepended when the camel-cased name is not an exported Go identifier.
const IdentifierPrefix = "Item"

// Identifier converts a catalog name such as "diamond_pickaxe" into an
// exported Go identifier such as "DiamondPickaxe".
//
// Every rune that is neither a letter nor a digit separates segments. The first
// letter of each segment is upper-cased and the rest is kept as is. A name with
// no letters or digits yields "".
func Identifier(name string) string {
	segments := strings.FieldsFunc(name, isSeparator)
	if len(segments) == 0 {
		return ""
	}

	// cases.Caser is stateful, so each call gets its own.
	caser := cases.Title(language.Und, cases.NoLower)

	var sb strings.Builder
	sb.Grow(len(name))
	for _, segment := range segments {
		sb.WriteString(caser.String(segment))
	}

	ident := sb.String()
	if !token.IsIdentifier(ident) || !token.IsExported(ident) {
		ident = IdentifierPrefix + ident
	}
	return ident
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
