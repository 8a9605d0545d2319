// File: typeconf/config.go
package typeconf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Engine parses and validates configuration text against an option registry.
// One engine can load any number of files; each loaded File is independent
// and immutable. All methods are safe for concurrent use.
type Engine struct {
	registry *Registry
}

// New creates an engine over the built-in option catalog.
func New() *Engine {
	return &Engine{registry: DefaultRegistry()}
}

// NewWithRegistry creates an engine over a caller-supplied registry, for
// embedding the resolver with a custom option set.
func NewWithRegistry(registry *Registry) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Engine{registry: registry}
}

// Registry returns the engine's option registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Describe returns the registered spec for an option name, or an error
// wrapping ErrUnknownOption.
func (e *Engine) Describe(name string) (OptionSpec, error) {
	return e.registry.Lookup(name)
}

// Load parses and validates configuration text. name labels the input in
// diagnostics and may be empty.
//
// Validation does not stop at the first problem: the returned error joins
// one Error per malformed selector, duplicate key, unknown option or
// unparsable value found anywhere in the text, and Issues lists them all.
// No file is returned alongside an error.
func (e *Engine) Load(name, text string) (*File, error) {
	return e.LoadReader(name, strings.NewReader(text))
}

// LoadReader is Load for streaming input.
func (e *Engine) LoadReader(name string, r io.Reader) (*File, error) {
	sections, parseErr := parseSections(r)
	advisories, validateErr := validateSections(e.registry, sections)

	if err := errors.Join(parseErr, validateErr); err != nil {
		return nil, err
	}

	for _, adv := range advisories {
		zap.S().Warnw("deprecated option set",
			"file", name,
			"section", adv.Section,
			"option", adv.Option,
			"line", adv.Line,
			"replaced_by", adv.ReplacedBy)
	}

	return &File{
		registry:   e.registry,
		name:       name,
		sections:   sections,
		advisories: advisories,
	}, nil
}

// LoadFile reads and loads a configuration file from disk. A missing file
// reports ErrNotFound.
func (e *Engine) LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open configuration file '%s': %w", path, err)
	}
	defer f.Close()

	return e.LoadReader(path, f)
}
