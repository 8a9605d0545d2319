// File: typeconf/parser.go
package typeconf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Entry is a single option assignment inside a section.
type Entry struct {
	// Option is the key, lower-cased.
	Option string
	// Raw is the value as written, continuation lines joined with newlines.
	Raw string
	// Value is the coerced value, populated during validation.
	Value any
	// Line is the 1-based line the assignment starts on.
	Line int
}

// Section is one bracketed block of a configuration file.
type Section struct {
	Selector Selector
	// Line is the 1-based line of the section header.
	Line int
	// Entries holds the section's assignments in declaration order. After
	// validation only well-formed entries remain.
	Entries []Entry
}

// maxLineSize bounds a single physical line of configuration text.
const maxLineSize = 1 << 20

// parseSections reads INI-style text into sections. Syntax issues do not
// stop the parse; every issue is collected and returned joined, so a caller
// sees all of them at once. Only an I/O failure aborts early.
func parseSections(r io.Reader) ([]Section, error) {
	var sections []Section
	var issues []error

	// current is the section receiving entries (nil before the first header),
	// last the entry receiving continuation lines. skip drops the entries
	// that follow a malformed header so one bad header reports one issue.
	var current *Section
	var last *Entry
	var skip bool
	seen := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed[0] == '#' || trimmed[0] == ';' {
			continue
		}

		// Section header.
		if trimmed[0] == '[' {
			last = nil
			skip = false

			closing := strings.IndexByte(trimmed, ']')
			switch {
			case closing < 0:
				issues = append(issues, &Error{
					Err:     ErrMalformedSelector,
					Section: trimmed,
					Line:    lineNo,
					Detail:  "missing closing bracket",
				})
				current, skip = nil, true
				continue
			case closing != len(trimmed)-1:
				issues = append(issues, &Error{
					Err:     ErrMalformedSelector,
					Section: trimmed,
					Line:    lineNo,
					Detail:  "unexpected text after closing bracket",
				})
				current, skip = nil, true
				continue
			}

			selector, err := ParseSelector(trimmed[1:closing])
			if err != nil {
				var perr *Error
				if errors.As(err, &perr) {
					perr.Line = lineNo
				}
				issues = append(issues, err)
				current, skip = nil, true
				continue
			}

			if first, dup := seen[selector.String()]; dup {
				issues = append(issues, &Error{
					Err:     ErrDuplicateSection,
					Section: selector.String(),
					Line:    lineNo,
					Detail:  fmt.Sprintf("already declared at line %d", first),
				})
			} else {
				seen[selector.String()] = lineNo
			}

			sections = append(sections, Section{Selector: selector, Line: lineNo})
			current = &sections[len(sections)-1]
			continue
		}

		// Continuation of the previous value: the line is indented.
		if line[0] == ' ' || line[0] == '\t' {
			if last == nil {
				if !skip {
					issues = append(issues, &Error{
						Err:    ErrMalformedLine,
						Line:   lineNo,
						Value:  trimmed,
						Detail: "continuation line without a preceding option",
					})
				}
				continue
			}
			last.Raw += "\n" + trimmed
			continue
		}

		// Option assignment.
		if skip {
			continue
		}
		if current == nil {
			issues = append(issues, &Error{
				Err:    ErrMalformedLine,
				Line:   lineNo,
				Value:  trimmed,
				Detail: "option outside of any section",
			})
			continue
		}

		delim := delimiterIndex(trimmed)
		if delim < 0 {
			issues = append(issues, &Error{
				Err:     ErrMalformedLine,
				Section: current.Selector.String(),
				Line:    lineNo,
				Value:   trimmed,
				Detail:  `expected "key = value" or "key: value"`,
			})
			last = nil
			continue
		}

		key := strings.ToLower(strings.TrimSpace(trimmed[:delim]))
		if !isValidOptionName(key) {
			issues = append(issues, &Error{
				Err:     ErrMalformedLine,
				Section: current.Selector.String(),
				Line:    lineNo,
				Value:   trimmed,
				Detail:  fmt.Sprintf("invalid option key %q", strings.TrimSpace(trimmed[:delim])),
			})
			last = nil
			continue
		}

		current.Entries = append(current.Entries, Entry{
			Option: key,
			Raw:    strings.TrimSpace(trimmed[delim+1:]),
			Line:   lineNo,
		})
		last = &current.Entries[len(current.Entries)-1]
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	return sections, errors.Join(issues...)
}

// delimiterIndex finds the first '=' or ':' in a trimmed assignment line,
// whichever comes first.
func delimiterIndex(s string) int {
	eq := strings.IndexByte(s, '=')
	colon := strings.IndexByte(s, ':')
	switch {
	case eq < 0:
		return colon
	case colon < 0:
		return eq
	case eq < colon:
		return eq
	default:
		return colon
	}
}
