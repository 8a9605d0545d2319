// File: typeconf/coerce.go
package typeconf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Advisory is a non-fatal notice recorded while validating a file. It is
// emitted when a deprecated option is set; the file still loads.
type Advisory struct {
	Option     string
	Section    string
	Line       int
	ReplacedBy string
}

// String renders the advisory the way diagnostics print it.
func (a Advisory) String() string {
	msg := fmt.Sprintf("section [%s] line %d: option %q is deprecated", a.Section, a.Line, a.Option)
	if a.ReplacedBy != "" {
		msg += fmt.Sprintf("; use %q instead", a.ReplacedBy)
	}
	return msg
}

// coerceValue converts a raw value into the Go value for the option's kind:
// bool, int64, string, or []string. The returned error carries the human
// detail only; callers wrap it with section and line context.
func coerceValue(spec OptionSpec, raw string) (any, error) {
	switch spec.Kind {
	case KindBool:
		return parseBoolWord(raw)
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected a base-10 integer")
		}
		return n, nil
	case KindString, KindAny:
		return raw, nil
	case KindStringList:
		return splitList(raw), nil
	case KindGlobList:
		elems := splitList(raw)
		for _, elem := range elems {
			if !doublestar.ValidatePattern(elem) {
				return nil, fmt.Errorf("element %q is not a valid glob pattern", elem)
			}
		}
		return elems, nil
	default:
		return nil, fmt.Errorf("unhandled option kind %s", spec.Kind)
	}
}

// parseBoolWord recognizes the accepted boolean spellings, case-insensitively.
func parseBoolWord(raw string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off":
		return false, nil
	default:
		return nil, fmt.Errorf("expected one of true/yes/1/on or false/no/0/off")
	}
}

// validateSections checks every entry against the registry and coerces its
// value in place. Invalid entries are removed from their section and
// reported; issues across all sections are aggregated so the caller sees
// every problem at once. Setting a deprecated option yields an advisory,
// not an error.
func validateSections(registry *Registry, sections []Section) ([]Advisory, error) {
	var advisories []Advisory
	var issues []error

	for si := range sections {
		section := &sections[si]
		kept := section.Entries[:0]
		seen := make(map[string]int, len(section.Entries))

		for _, entry := range section.Entries {
			if first, dup := seen[entry.Option]; dup {
				issues = append(issues, &Error{
					Err:     ErrDuplicateKey,
					Section: section.Selector.String(),
					Option:  entry.Option,
					Line:    entry.Line,
					Detail:  fmt.Sprintf("already set at line %d", first),
				})
				continue
			}
			// First occurrences count even when they fail to validate, so a
			// repeat of a bad entry is still diagnosed as a duplicate.
			seen[entry.Option] = entry.Line

			spec, err := registry.Lookup(entry.Option)
			if err != nil {
				issues = append(issues, &Error{
					Err:     ErrUnknownOption,
					Section: section.Selector.String(),
					Option:  entry.Option,
					Line:    entry.Line,
				})
				continue
			}

			value, cerr := coerceValue(spec, entry.Raw)
			if cerr != nil {
				issues = append(issues, &Error{
					Err:     ErrInvalidValue,
					Section: section.Selector.String(),
					Option:  entry.Option,
					Value:   entry.Raw,
					Line:    entry.Line,
					Detail:  cerr.Error(),
				})
				continue
			}

			entry.Value = value
			kept = append(kept, entry)

			if spec.Deprecated {
				advisories = append(advisories, Advisory{
					Option:     entry.Option,
					Section:    section.Selector.String(),
					Line:       entry.Line,
					ReplacedBy: spec.ReplacedBy,
				})
			}
		}

		section.Entries = kept
	}

	return advisories, errors.Join(issues...)
}
