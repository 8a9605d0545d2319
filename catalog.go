// File: typeconf/catalog.go
package typeconf

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed options.toml
var catalogTOML []byte

var (
	catalogOnce     sync.Once
	catalogRegistry *Registry
	catalogErr      error
)

// DefaultRegistry returns the registry holding the built-in option catalog.
// The catalog is embedded at build time and decoded once; every caller gets
// the same instance. A malformed embedded catalog is a build defect, so it
// panics rather than returning an error.
func DefaultRegistry() *Registry {
	catalogOnce.Do(loadCatalog)
	if catalogErr != nil {
		panic(fmt.Sprintf("typeconf: built-in catalog: %v", catalogErr))
	}
	return catalogRegistry
}

func loadCatalog() {
	var raw struct {
		Options []struct {
			Name        string `toml:"name"`
			Kind        string `toml:"kind"`
			Default     any    `toml:"default"`
			Description string `toml:"description"`
			Deprecated  bool   `toml:"deprecated"`
			ReplacedBy  string `toml:"replaced_by"`
		} `toml:"option"`
	}

	if err := toml.Unmarshal(catalogTOML, &raw); err != nil {
		catalogErr = fmt.Errorf("decode: %w", err)
		return
	}

	registry := NewRegistry()
	for _, opt := range raw.Options {
		kind, ok := kindFromName(opt.Kind)
		if !ok {
			catalogErr = fmt.Errorf("option %q: unknown kind %q", opt.Name, opt.Kind)
			return
		}
		spec := OptionSpec{
			Name:        opt.Name,
			Kind:        kind,
			Default:     normalizeCatalogDefault(opt.Default),
			Description: opt.Description,
			Deprecated:  opt.Deprecated,
			ReplacedBy:  opt.ReplacedBy,
		}
		if err := registry.Register(spec); err != nil {
			catalogErr = err
			return
		}
	}

	catalogRegistry = registry
}

// normalizeCatalogDefault converts TOML array values into the []string shape
// Register expects; scalar defaults pass through unchanged.
func normalizeCatalogDefault(def any) any {
	elems, ok := def.([]any)
	if !ok {
		return def
	}
	out := make([]string, 0, len(elems))
	for _, elem := range elems {
		if s, isString := elem.(string); isString {
			out = append(out, s)
		}
	}
	return out
}
