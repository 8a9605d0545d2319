// File: typeconf/resolved.go
package typeconf

import "fmt"

// Resolved is the effective option set for one module path. It is a
// self-contained snapshot: the file it came from can be discarded, and
// concurrent reads need no synchronization.
type Resolved struct {
	target     string
	registry   *Registry
	values     map[string]any
	origins    map[string]Origin
	explicit   map[string]bool
	advisories []Advisory
}

// Target returns the module path this resolution was computed for.
func (r *Resolved) Target() string {
	return r.target
}

// Value returns the typed value for name (bool, int64, string or []string)
// and whether the option is registered.
func (r *Resolved) Value(name string) (any, bool) {
	value, ok := r.values[name]
	if !ok {
		return nil, false
	}
	if list, isList := value.([]string); isList {
		out := make([]string, len(list))
		copy(out, list)
		return out, true
	}
	return value, true
}

// Origin reports which layer supplied the value for name.
func (r *Resolved) Origin(name string) (Origin, bool) {
	origin, ok := r.origins[name]
	return origin, ok
}

// Explicit reports whether name was set by a matching section rather than
// retained from its registered default.
func (r *Resolved) Explicit(name string) bool {
	return r.explicit[name]
}

// Bool returns a bool option's value.
func (r *Resolved) Bool(name string) (bool, error) {
	spec, value, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	if spec.Kind != KindBool {
		return false, fmt.Errorf("option %q has kind %s, not bool", name, spec.Kind)
	}
	return value.(bool), nil
}

// Int64 returns an int option's value.
func (r *Resolved) Int64(name string) (int64, error) {
	spec, value, err := r.lookup(name)
	if err != nil {
		return 0, err
	}
	if spec.Kind != KindInt {
		return 0, fmt.Errorf("option %q has kind %s, not int", name, spec.Kind)
	}
	return value.(int64), nil
}

// String returns a string or any option's value.
func (r *Resolved) String(name string) (string, error) {
	spec, value, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	if spec.Kind != KindString && spec.Kind != KindAny {
		return "", fmt.Errorf("option %q has kind %s, not string", name, spec.Kind)
	}
	return value.(string), nil
}

// StringList returns a list option's elements. Glob lists qualify, since
// their elements are plain strings.
func (r *Resolved) StringList(name string) ([]string, error) {
	spec, value, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	if spec.Kind != KindStringList && spec.Kind != KindGlobList {
		return nil, fmt.Errorf("option %q has kind %s, not a list", name, spec.Kind)
	}
	list := value.([]string)
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

// Globs returns a glob-list option's patterns.
func (r *Resolved) Globs(name string) ([]string, error) {
	spec, value, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	if spec.Kind != KindGlobList {
		return nil, fmt.Errorf("option %q has kind %s, not glob-list", name, spec.Kind)
	}
	list := value.([]string)
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

// Options returns a copy of every option's effective value, keyed by name.
func (r *Resolved) Options() map[string]any {
	out := make(map[string]any, len(r.values))
	for name, value := range r.values {
		if list, isList := value.([]string); isList {
			elems := make([]string, len(list))
			copy(elems, list)
			out[name] = elems
			continue
		}
		out[name] = value
	}
	return out
}

// Advisories returns the advisories raised by the sections that matched
// this resolution's target.
func (r *Resolved) Advisories() []Advisory {
	out := make([]Advisory, len(r.advisories))
	copy(out, r.advisories)
	return out
}

func (r *Resolved) lookup(name string) (OptionSpec, any, error) {
	spec, err := r.registry.Lookup(name)
	if err != nil {
		return OptionSpec{}, nil, err
	}
	value, ok := r.values[name]
	if !ok {
		// Registered after this snapshot was resolved.
		return OptionSpec{}, nil, &Error{Err: ErrUnknownOption, Option: name}
	}
	return spec, value, nil
}
