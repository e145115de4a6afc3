// Package naming validates the identifiers swiftinit derives from directory
// names. A package name doubles as the generated module name and type name,
// so it must be legal in all three positions.
package naming

import "regexp"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidIdentifier reports whether s is a legal package identifier:
// an ASCII letter or underscore followed by letters, digits, or underscores.
func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}
