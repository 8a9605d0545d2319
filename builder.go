// File: typeconf/builder.go
package typeconf

import "fmt"

// ValidatorFunc is a function that validates a loaded File beyond the
// built-in checks. It runs after parsing succeeds and should return an
// error describing the first policy violation it finds.
type ValidatorFunc func(f *File) error

// Builder provides a fluent interface for assembling a registry and loading
// configuration through it.
type Builder struct {
	registry   *Registry
	extra      []OptionSpec
	path       string
	name       string
	text       string
	hasText    bool
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a builder over the built-in option catalog.
func NewBuilder() *Builder {
	return &Builder{
		validators: make([]ValidatorFunc, 0),
	}
}

// WithRegistry replaces the built-in catalog with a caller-supplied registry.
func (b *Builder) WithRegistry(registry *Registry) *Builder {
	b.registry = registry
	return b
}

// WithOption registers an additional option on top of the catalog. The
// underlying catalog is not modified; Build works on a copy.
func (b *Builder) WithOption(spec OptionSpec) *Builder {
	b.extra = append(b.extra, spec)
	return b
}

// WithFile sets the configuration file path to load.
func (b *Builder) WithFile(path string) *Builder {
	if b.hasText {
		b.err = fmt.Errorf("WithFile cannot be combined with WithText")
		return b
	}
	b.path = path
	return b
}

// WithText sets literal configuration text to load instead of a file.
// name labels the text in diagnostics and may be empty.
func (b *Builder) WithText(name, text string) *Builder {
	if b.path != "" {
		b.err = fmt.Errorf("WithText cannot be combined with WithFile")
		return b
	}
	b.name = name
	b.text = text
	b.hasText = true
	return b
}

// WithValidator adds a validation function that runs against the loaded
// file. Multiple validators run in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build assembles the registry, loads the configured input and runs the
// validators. With neither a file nor text configured, the result is an
// empty file that resolves everything to registered defaults.
func (b *Builder) Build() (*File, error) {
	if b.err != nil {
		return nil, b.err
	}

	registry := b.registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	if len(b.extra) > 0 {
		clone := NewRegistry()
		for _, spec := range registry.Options() {
			if err := clone.Register(spec); err != nil {
				return nil, fmt.Errorf("failed to copy registry: %w", err)
			}
		}
		for _, spec := range b.extra {
			if err := clone.Register(spec); err != nil {
				return nil, fmt.Errorf("failed to register option: %w", err)
			}
		}
		registry = clone
	}

	engine := NewWithRegistry(registry)

	var file *File
	var err error
	switch {
	case b.hasText:
		file, err = engine.Load(b.name, b.text)
	case b.path != "":
		file, err = engine.LoadFile(b.path)
	default:
		file, err = engine.Load("", "")
	}
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(file); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return file, nil
}

// MustBuild is like Build but panics on error. Intended for initialization
// paths where a bad configuration should stop the program.
func (b *Builder) MustBuild() *File {
	file, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("configuration build failed: %v", err))
	}
	return file
}

// BuildAndResolve builds the file and immediately resolves one module path.
func (b *Builder) BuildAndResolve(modulePath string) (*Resolved, error) {
	file, err := b.Build()
	if err != nil {
		return nil, err
	}
	return file.Resolve(modulePath), nil
}
