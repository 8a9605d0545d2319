// File: typeconf/errors.go
package typeconf

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel categories for every failure the engine reports. Location context
// travels on *Error; match categories with errors.Is.
var (
	// ErrDuplicateOption indicates a second registration of an option name.
	ErrDuplicateOption = errors.New("duplicate option")
	// ErrUnknownOption indicates an option name absent from the registry.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidValue indicates a raw value that failed coercion for its kind.
	ErrInvalidValue = errors.New("invalid value")
	// ErrMalformedSelector indicates a section header that does not parse as a target selector.
	ErrMalformedSelector = errors.New("malformed selector")
	// ErrDuplicateKey indicates the same option set twice within one section.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrDuplicateSection indicates a repeated section header.
	ErrDuplicateSection = errors.New("duplicate section")
	// ErrMalformedLine indicates a line that is neither a header, an entry,
	// a comment, nor a continuation of the previous entry.
	ErrMalformedLine = errors.New("malformed line")
	// ErrNotFound indicates a configuration file that does not exist.
	ErrNotFound = errors.New("configuration file not found")
)

// Error is a single configuration problem tied to its origin in the source
// text. Err always wraps one of the sentinel categories above.
type Error struct {
	Err     error
	Section string // section header text, empty outside any section
	Option  string // option name, empty for section-level problems
	Value   string // offending raw value, empty when not value-related
	Line    int    // 1-based line in the source text, 0 when unknown
	Detail  string // additional explanation
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Section != "" {
		fmt.Fprintf(&b, "section [%s]", e.Section)
	} else {
		b.WriteString("config")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Option != "" {
		fmt.Fprintf(&b, " %q", e.Option)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " (value %q)", e.Value)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap exposes the sentinel category for errors.Is.
func (e *Error) Unwrap() error { return e.Err }

// Issues flattens err into the individual problems it carries. Load
// aggregates per-section failures with errors.Join; Issues walks the joined
// tree so callers can render every problem with its location instead of
// fixing one at a time.
func Issues(err error) []*Error {
	if err == nil {
		return nil
	}
	var out []*Error
	collectIssues(err, &out)
	return out
}

func collectIssues(err error, out *[]*Error) {
	switch v := err.(type) {
	case nil:
	case *Error:
		*out = append(*out, v)
	case interface{ Unwrap() []error }:
		for _, sub := range v.Unwrap() {
			collectIssues(sub, out)
		}
	default:
		if sub := errors.Unwrap(err); sub != nil {
			collectIssues(sub, out)
		}
	}
}
