// File: typeconf/doc.go

// Package typeconf resolves layered configuration for a static type checker.
//
// Configuration lives in an INI-style file made of bracketed sections. The
// reserved [global] section applies to every module; any other header is a
// glob selector over dotted module paths, such as [pkg.*] or [pkg.sub].
// Options declared in matching sections layer over the registered defaults,
// most specific section last, and every resolved value remembers where it
// came from.
//
// Features:
//   - Option registry with typed kinds, defaults and deprecation metadata
//   - Built-in option catalog embedded from options.toml
//   - Diagnostics that aggregate every problem in a file with line numbers
//   - Specificity-ordered merging: defaults, then [global], then matching
//     pattern sections, exact selectors beating wildcard ones
//   - Per-option provenance through Origin
//   - Struct decoding of resolved options via mapstructure
//   - Canonical re-encoding of loaded files and atomic writes
//   - Resolution reports exportable as INI, TOML, YAML or JSON
//   - File discovery via environment variable, working directory and XDG paths
//   - Polling file watcher with debounced reloads
//
// Quick Start:
//
//	text := `
//	[global]
//	strict_optional = true
//
//	[vendored.*]
//	ignore_missing_imports = yes
//	`
//
//	file, err := typeconf.Load(text)
//	if err != nil {
//	    for _, issue := range typeconf.Issues(err) {
//	        log.Println(issue)
//	    }
//	    log.Fatal("configuration is invalid")
//	}
//
//	resolved := file.Resolve("vendored.lib.util")
//	strict, _ := resolved.Bool("strict_optional")
//	ignore, _ := resolved.Bool("ignore_missing_imports")
//
// Precedence (lowest to highest):
//  1. Registered defaults
//  2. The [global] section
//  3. Matching pattern sections, least to most specific; among selectors of
//     equal specificity the one declared later wins
//
// Options a section does not mention keep their value from the layers below
// it, so a pattern section can override a single option without repeating
// the rest.
//
// Thread Safety:
// A loaded File is immutable, and Resolve may be called from any number of
// goroutines concurrently. Registries are guarded by a read-write mutex.
package typeconf
