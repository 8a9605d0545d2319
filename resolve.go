// File: typeconf/resolve.go
package typeconf

import "sort"

// Source identifies the precedence layer a resolved value came from.
type Source string

const (
	// SourceDefault represents the registered default value.
	SourceDefault Source = "default"
	// SourceGlobal represents the reserved unconditional section.
	SourceGlobal Source = "global"
	// SourcePattern represents a module-selector section.
	SourcePattern Source = "pattern"
)

// Origin records where a resolved option value was assigned.
type Origin struct {
	// Source is the layer that supplied the value.
	Source Source
	// Section is the header of the supplying section, empty for defaults.
	Section string
	// Line is the assignment's line, 0 for defaults.
	Line int
}

// File is a parsed and validated configuration file. It is immutable once
// loaded, so any number of goroutines may call Resolve concurrently.
type File struct {
	registry   *Registry
	name       string
	sections   []Section
	advisories []Advisory
}

// Name returns the display name given at load time.
func (f *File) Name() string {
	return f.name
}

// Registry returns the option registry the file was validated against.
func (f *File) Registry() *Registry {
	return f.registry
}

// Sections returns the file's sections in declaration order. Entries and
// their list values are copied, so callers cannot alter the file through
// the result.
func (f *File) Sections() []Section {
	out := make([]Section, len(f.sections))
	copy(out, f.sections)
	for i := range out {
		entries := make([]Entry, len(out[i].Entries))
		copy(entries, out[i].Entries)
		for j := range entries {
			entries[j].Value = cloneValue(entries[j].Value)
		}
		out[i].Entries = entries
	}
	return out
}

// Advisories returns every advisory recorded at load time, such as uses of
// deprecated options, in file order.
func (f *File) Advisories() []Advisory {
	out := make([]Advisory, len(f.advisories))
	copy(out, f.advisories)
	return out
}

// Resolve computes the effective option set for a dotted module path.
//
// Layers apply from least to most specific: registered defaults first, then
// global sections, then every pattern section matching the path, ordered so
// that exact selectors beat wildcard ones and longer literal prefixes beat
// shorter. Sections tied on specificity apply in declaration order, so the
// one declared later wins. An option a layer does not mention keeps the
// value from the layers below it.
func (f *File) Resolve(modulePath string) *Resolved {
	values := make(map[string]any, f.registry.Len())
	origins := make(map[string]Origin, f.registry.Len())
	explicit := make(map[string]bool)
	matchedSections := make(map[string]bool)

	for _, spec := range f.registry.Options() {
		values[spec.Name] = spec.Default
		origins[spec.Name] = Origin{Source: SourceDefault}
	}

	apply := func(section Section, source Source) {
		matchedSections[section.Selector.String()] = true
		for _, entry := range section.Entries {
			values[entry.Option] = entry.Value
			origins[entry.Option] = Origin{
				Source:  source,
				Section: section.Selector.String(),
				Line:    entry.Line,
			}
			explicit[entry.Option] = true
		}
	}

	for _, section := range f.sections {
		if section.Selector.IsGlobal() {
			apply(section, SourceGlobal)
		}
	}

	var matched []Section
	for _, section := range f.sections {
		if section.Selector.IsGlobal() {
			continue
		}
		if section.Selector.Matches(modulePath) {
			matched = append(matched, section)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[j].Selector.moreSpecificThan(matched[i].Selector)
	})
	for _, section := range matched {
		apply(section, SourcePattern)
	}

	var advisories []Advisory
	for _, adv := range f.advisories {
		if matchedSections[adv.Section] {
			advisories = append(advisories, adv)
		}
	}

	return &Resolved{
		target:     modulePath,
		registry:   f.registry,
		values:     values,
		origins:    origins,
		explicit:   explicit,
		advisories: advisories,
	}
}
