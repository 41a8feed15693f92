// Package slugs provides canonical name transformations used across lattice.
//
// Generator targets are referred to by three spellings:
//   - the identifier the user typed ("AboutUs", "about-us", "aboutUs")
//   - the PascalCase artifact name used for files and JSX symbols ("AboutUs")
//   - the kebab-case route slug used for URL paths ("about-us")
//
// This package centralizes the conversions so generate and destroy always
// agree on them.
package slugs

import (
	"fmt"
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// ValidateName checks that a bare entity name is a usable identifier:
// it must start with a letter and contain only letters, digits, '_' or '-'.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	runes := []rune(name)
	if !unicode.IsLetter(runes[0]) {
		return fmt.Errorf("invalid name %q: must start with a letter", name)
	}
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			continue
		}
		return fmt.Errorf("invalid name %q: only letters, digits, '-' and '_' are allowed", name)
	}
	return nil
}

// PascalCase converts a name to PascalCase, splitting on '-', '_' and
// existing case boundaries. "about-us" -> "AboutUs", "aboutUs" -> "AboutUs".
func PascalCase(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CamelCase converts a name to camelCase, used for route name attributes.
// "AboutUs" -> "aboutUs".
func CamelCase(name string) string {
	pascal := PascalCase(name)
	if pascal == "" {
		return pascal
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// RouteSlug converts a name to the kebab-case slug used in route paths.
// Case boundaries become dashes: "AboutUs" -> "about-us".
func RouteSlug(name string) string {
	slugged := goslug.Make(splitCamel(name))
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	}
	return slugged
}

// splitCamel inserts spaces at lower-to-upper case boundaries so that
// gosimple/slug turns them into dashes.
func splitCamel(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
