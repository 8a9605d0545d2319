// FILE: typeconf/export.go
package typeconf

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a serialization for resolution reports.
type Format string

const (
	// FormatINI is the engine's own text format, flattened to one global
	// section of explicit values.
	FormatINI Format = "ini"
	// FormatTOML is a TOML report with values and provenance.
	FormatTOML Format = "toml"
	// FormatYAML is a YAML report with values and provenance.
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON report with values and provenance.
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied format name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ini":
		return FormatINI, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q: expected ini, toml, yaml or json", name)
	}
}

// OriginReport is the serializable form of an Origin. Section and Line are
// empty for values that kept their catalog default.
type OriginReport struct {
	Source  string `json:"source" toml:"source" yaml:"source"`
	Section string `json:"section,omitempty" toml:"section,omitempty" yaml:"section,omitempty"`
	Line    int    `json:"line,omitempty" toml:"line,omitempty" yaml:"line,omitempty"`
}

// Report is the serializable form of a resolution: the target module path,
// every option's effective value, per-option provenance, and the advisories
// raised by the sections that applied.
type Report struct {
	Target     string                  `json:"target" toml:"target" yaml:"target"`
	Options    map[string]any          `json:"options" toml:"options" yaml:"options"`
	Origins    map[string]OriginReport `json:"origins" toml:"origins" yaml:"origins"`
	Advisories []string                `json:"advisories,omitempty" toml:"advisories,omitempty" yaml:"advisories,omitempty"`
}

// Report builds the serializable snapshot of the resolution.
func (r *Resolved) Report() Report {
	origins := make(map[string]OriginReport, len(r.origins))
	for name, origin := range r.origins {
		origins[name] = OriginReport{
			Source:  string(origin.Source),
			Section: origin.Section,
			Line:    origin.Line,
		}
	}

	advisories := make([]string, 0, len(r.advisories))
	for _, adv := range r.advisories {
		advisories = append(advisories, adv.String())
	}

	return Report{
		Target:     r.target,
		Options:    r.Options(),
		Origins:    origins,
		Advisories: advisories,
	}
}

// Export writes the resolution to w in the requested format. FormatINI emits
// the reloadable text produced by Encode; the structured formats carry the
// full report including provenance.
func (r *Resolved) Export(w io.Writer, format Format) error {
	switch format {
	case FormatINI:
		return r.Encode(w)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(r.Report())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.Report()); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Report())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
