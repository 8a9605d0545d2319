// File: typeconf/register.go
package typeconf

import (
	"fmt"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Kind identifies the semantic type of an option and selects the coercion
// applied to its raw values.
type Kind uint8

const (
	// KindBool accepts true/yes/1/on and false/no/0/off, case-insensitively.
	KindBool Kind = iota
	// KindInt accepts base-10 integers.
	KindInt
	// KindString stores the trimmed raw value as-is.
	KindString
	// KindStringList accepts comma- or newline-separated elements.
	KindStringList
	// KindGlobList is a string list whose elements must be valid glob patterns.
	KindGlobList
	// KindAny stores the raw value without validation. It exists for options
	// whose values are opaque to the checker and interpreted elsewhere.
	KindAny
)

// String returns the catalog name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindStringList:
		return "string-list"
	case KindGlobList:
		return "glob-list"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// kindFromName maps catalog kind names back to Kind values.
func kindFromName(name string) (Kind, bool) {
	switch name {
	case "bool":
		return KindBool, true
	case "int":
		return KindInt, true
	case "string":
		return KindString, true
	case "string-list":
		return KindStringList, true
	case "glob-list":
		return KindGlobList, true
	case "any":
		return KindAny, true
	default:
		return 0, false
	}
}

// OptionSpec declares a single recognized option.
type OptionSpec struct {
	// Name is the option key as written in configuration text. Lower-case.
	Name string
	// Kind selects the coercion for raw values.
	Kind Kind
	// Default is used when no section sets the option. Its dynamic type must
	// match Kind (bool, int64, string or []string).
	Default any
	// Description documents the option for catalog listings.
	Description string
	// Deprecated marks the option as accepted but discouraged. Setting it in
	// a file records a non-fatal advisory on the resolution.
	Deprecated bool
	// ReplacedBy names the successor option, when one exists.
	ReplacedBy string
}

// Registry holds every recognized option. It is normally populated once at
// startup and only read afterwards; all methods are safe for concurrent use.
type Registry struct {
	mutex sync.RWMutex
	specs map[string]OptionSpec
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[string]OptionSpec),
	}
}

// Register adds a spec to the registry. Registering a name twice fails with
// ErrDuplicateOption. The spec itself is validated: the name must be a legal
// lower-case option name, the kind must be known, and the default's dynamic
// type must match the kind.
func (r *Registry) Register(spec OptionSpec) error {
	normalized, err := normalizeSpec(spec)
	if err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.specs[normalized.Name]; exists {
		return &Error{Err: ErrDuplicateOption, Option: normalized.Name}
	}

	r.specs[normalized.Name] = normalized
	r.order = append(r.order, normalized.Name)
	return nil
}

// MustRegister is like Register but panics on error. Intended for catalog
// initialization where a failure is a programming mistake.
func (r *Registry) MustRegister(spec OptionSpec) {
	if err := r.Register(spec); err != nil {
		panic(fmt.Sprintf("typeconf: register %q: %v", spec.Name, err))
	}
}

// Lookup returns the spec for name, or ErrUnknownOption. List defaults are
// handed out as copies.
func (r *Registry) Lookup(name string) (OptionSpec, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	spec, ok := r.specs[name]
	if !ok {
		return OptionSpec{}, &Error{Err: ErrUnknownOption, Option: name}
	}
	spec.Default = cloneValue(spec.Default)
	return spec, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, ok := r.specs[name]
	return ok
}

// Options returns all specs in registration order.
func (r *Registry) Options() []OptionSpec {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]OptionSpec, 0, len(r.order))
	for _, name := range r.order {
		spec := r.specs[name]
		spec.Default = cloneValue(spec.Default)
		out = append(out, spec)
	}
	return out
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.order)
}

// normalizeSpec validates a spec and normalizes its default value
// (int widens to int64, nil lists become empty lists).
func normalizeSpec(spec OptionSpec) (OptionSpec, error) {
	if spec.Name == "" {
		return spec, fmt.Errorf("option name cannot be empty")
	}
	if !isValidOptionName(spec.Name) {
		return spec, fmt.Errorf("invalid option name %q: must be lower-case letters, digits and underscores", spec.Name)
	}

	switch spec.Kind {
	case KindBool:
		if _, ok := spec.Default.(bool); !ok {
			return spec, fmt.Errorf("option %q: default %v (%T) does not match kind bool", spec.Name, spec.Default, spec.Default)
		}
	case KindInt:
		switch v := spec.Default.(type) {
		case int64:
		case int:
			spec.Default = int64(v)
		default:
			return spec, fmt.Errorf("option %q: default %v (%T) does not match kind int", spec.Name, spec.Default, spec.Default)
		}
	case KindString, KindAny:
		if _, ok := spec.Default.(string); !ok {
			return spec, fmt.Errorf("option %q: default %v (%T) does not match kind %s", spec.Name, spec.Default, spec.Default, spec.Kind)
		}
	case KindStringList, KindGlobList:
		if spec.Default == nil {
			spec.Default = []string{}
			break
		}
		elems, ok := spec.Default.([]string)
		if !ok {
			return spec, fmt.Errorf("option %q: default %v (%T) does not match kind %s", spec.Name, spec.Default, spec.Default, spec.Kind)
		}
		if spec.Kind == KindGlobList {
			for _, elem := range elems {
				if !doublestar.ValidatePattern(elem) {
					return spec, fmt.Errorf("option %q: default element %q is not a valid glob pattern", spec.Name, elem)
				}
			}
		}
		// Detach from the caller's slice so later mutation cannot reach
		// the registry.
		spec.Default = cloneValue(elems)
	default:
		return spec, fmt.Errorf("option %q: unknown kind %d", spec.Name, spec.Kind)
	}

	return spec, nil
}
