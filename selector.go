// File: typeconf/selector.go
package typeconf

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobalSection is the reserved section header whose options apply to every
// module, below any matching pattern section.
const GlobalSection = "global"

// selectorMeta are the characters that make a selector a pattern rather than
// an exact module path.
const selectorMeta = "*?[]{}"

// Selector is a parsed section header: either the reserved global name or a
// glob over dotted module paths. `*` and `?` stay within a single dotted
// segment; `**` spans segments.
type Selector struct {
	raw      string
	global   bool
	wildcard bool
	pattern  string // slash-separated form handed to doublestar
}

// ParseSelector validates a section header and returns its selector.
// Failures carry ErrMalformedSelector.
func ParseSelector(raw string) (Selector, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Selector{}, &Error{Err: ErrMalformedSelector, Section: raw, Detail: "empty section header"}
	}
	if trimmed == GlobalSection {
		return Selector{raw: trimmed, global: true}, nil
	}

	depth := 0
	for _, r := range trimmed {
		if !isSelectorRune(r) {
			return Selector{}, &Error{
				Err:     ErrMalformedSelector,
				Section: trimmed,
				Detail:  fmt.Sprintf("character %q not allowed in a module selector", r),
			}
		}
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			// A header holds a single selector; commas only separate
			// brace-alternation branches.
			if depth <= 0 {
				return Selector{}, &Error{
					Err:     ErrMalformedSelector,
					Section: trimmed,
					Detail:  "comma outside brace alternation",
				}
			}
		}
	}
	for _, segment := range strings.Split(trimmed, ".") {
		if segment == "" {
			return Selector{}, &Error{
				Err:     ErrMalformedSelector,
				Section: trimmed,
				Detail:  "empty dotted-path segment",
			}
		}
	}

	pattern := strings.ReplaceAll(trimmed, ".", "/")
	if !doublestar.ValidatePattern(pattern) {
		return Selector{}, &Error{
			Err:     ErrMalformedSelector,
			Section: trimmed,
			Detail:  "invalid glob syntax",
		}
	}

	return Selector{
		raw:      trimmed,
		wildcard: strings.ContainsAny(trimmed, selectorMeta),
		pattern:  pattern,
	}, nil
}

// isSelectorRune permits dotted-path characters plus glob metacharacters.
func isSelectorRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '.':
		return true
	case strings.ContainsRune(selectorMeta, r):
		return true
	case r == ',' || r == '!' || r == '^' || r == '-':
		// Inside brace alternation and character classes.
		return true
	default:
		return false
	}
}

// String returns the selector as written in the section header.
func (s Selector) String() string {
	return s.raw
}

// IsGlobal reports whether this is the reserved unconditional section.
func (s Selector) IsGlobal() bool {
	return s.global
}

// IsWildcard reports whether the selector contains glob metacharacters.
// Exact selectors outrank wildcard ones during resolution.
func (s Selector) IsWildcard() bool {
	return s.wildcard
}

// Matches reports whether the selector covers modulePath. A selector covers
// a module when its pattern matches the full dotted path or any dotted
// ancestor of it, so [pkg.sub] applies to pkg.sub.mod. A trailing ".*" also
// covers the named parent itself, so [pkg.*] applies to pkg.
func (s Selector) Matches(modulePath string) bool {
	if s.global {
		return true
	}
	if matchAncestry(s.pattern, modulePath) {
		return true
	}
	if parent, found := strings.CutSuffix(s.pattern, "/*"); found && parent != "" {
		return matchAncestry(parent, modulePath)
	}
	return false
}

// matchAncestry matches pattern against the slash form of modulePath and
// each of its ancestors.
func matchAncestry(pattern, modulePath string) bool {
	path := strings.ReplaceAll(modulePath, ".", "/")
	for {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
		idx := strings.LastIndexByte(path, '/')
		if idx < 0 {
			return false
		}
		path = path[:idx]
	}
}

// literalPrefixLen returns the length of the selector's leading run of
// non-metacharacter text. Longer literal prefixes are more specific.
func (s Selector) literalPrefixLen() int {
	if idx := strings.IndexAny(s.raw, selectorMeta); idx >= 0 {
		return idx
	}
	return len(s.raw)
}

// moreSpecificThan reports whether s is strictly more specific than other:
// exact selectors beat wildcard ones, then the longer literal prefix wins.
// Selectors that tie on both fall back to declaration order elsewhere.
func (s Selector) moreSpecificThan(other Selector) bool {
	if s.wildcard != other.wildcard {
		return !s.wildcard
	}
	return s.literalPrefixLen() > other.literalPrefixLen()
}
