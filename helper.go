// File: typeconf/helper.go
package typeconf

import "strings"

// isValidOptionName reports whether s is a legal option key: lower-case
// ASCII letters, digits and underscores, starting with a letter.
func isValidOptionName(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		isLower := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'

		if i == 0 && !isLower {
			return false
		}
		if !(isLower || isDigit || isUnderscore) {
			return false
		}
	}
	return true
}

// IsValidModulePath reports whether s is a well-formed dotted module path,
// identifier segments separated by single dots (e.g. "pkg.sub.mod").
// Resolve accepts any string; callers taking module paths from user input
// can reject malformed ones up front.
func IsValidModulePath(s string) bool {
	if s == "" {
		return false
	}
	for _, segment := range strings.Split(s, ".") {
		if !isValidPathSegment(segment) {
			return false
		}
	}
	return true
}

// isValidPathSegment checks one dotted-path segment: ASCII letters, digits
// and underscores, not starting with a digit.
func isValidPathSegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'

		if i == 0 && isDigit {
			return false
		}
		if !(isLetter || isDigit || isUnderscore) {
			return false
		}
	}
	return true
}

// cloneValue copies a coerced value. Lists are the only mutable kind, so
// they are duplicated and every other value is returned as is.
func cloneValue(v any) any {
	list, ok := v.([]string)
	if !ok {
		return v
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// splitList breaks a raw value into list elements. Elements are separated by
// commas or newlines, surrounding whitespace is trimmed, and empty elements
// are dropped, so trailing separators and blank continuation lines are
// harmless. An empty or all-whitespace raw value yields an empty list.
func splitList(raw string) []string {
	elems := []string{}
	for _, chunk := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			elems = append(elems, trimmed)
		}
	}
	return elems
}
