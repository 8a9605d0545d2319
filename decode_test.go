// FILE: typeconf/decode_test.go
package typeconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeIntoStruct tests decoding a resolution into a tagged struct
func TestDecodeIntoStruct(t *testing.T) {
	type moduleSettings struct {
		StrictOptional bool     `typeconf:"strict_optional"`
		MaxErrors      int      `typeconf:"max_errors"`
		Platform       string   `typeconf:"platform"`
		SearchPath     []string `typeconf:"search_path"`
		Exclude        []string `typeconf:"exclude"`
	}

	resolved := mustLoad(t, `[global]
strict_optional = no
max_errors = 77
platform = linux
search_path = src, vendor
exclude = build/**
`).Resolve("app.main")

	var settings moduleSettings
	require.NoError(t, resolved.Decode(&settings))

	assert.False(t, settings.StrictOptional)
	assert.Equal(t, 77, settings.MaxErrors, "int64 values fill plain int fields")
	assert.Equal(t, "linux", settings.Platform)
	assert.Equal(t, []string{"src", "vendor"}, settings.SearchPath)
	assert.Equal(t, []string{"build/**"}, settings.Exclude)
}

// TestDecodeFieldNameFallback tests matching without explicit tags
func TestDecodeFieldNameFallback(t *testing.T) {
	type settings struct {
		Platform    string
		Incremental bool
	}

	resolved := mustLoad(t, "[global]\nplatform = darwin\nincremental = no\n").Resolve("app")

	var s settings
	require.NoError(t, resolved.Decode(&s))
	assert.Equal(t, "darwin", s.Platform)
	assert.False(t, s.Incremental)
}

// TestDecodeWeakTyping tests weak conversions during decoding
func TestDecodeWeakTyping(t *testing.T) {
	type settings struct {
		MaxErrors string   `typeconf:"max_errors"`
		Strict    int      `typeconf:"strict_optional"`
		Platforms []string `typeconf:"platform"`
	}

	resolved := mustLoad(t, "[global]\nmax_errors = 5\nplatform = linux\n").Resolve("app")

	var s settings
	require.NoError(t, resolved.Decode(&s))
	assert.Equal(t, "5", s.MaxErrors, "numbers convert to strings")
	assert.Equal(t, 1, s.Strict, "bools convert to ints")
	assert.Equal(t, []string{"linux"}, s.Platforms, "single values convert to slices")
}

// TestDecodeIntoMap tests decoding into a plain map
func TestDecodeIntoMap(t *testing.T) {
	resolved := mustLoad(t, "[global]\nmax_errors = 3\n").Resolve("app")

	out := make(map[string]any)
	require.NoError(t, resolved.Decode(&out))

	assert.Equal(t, int64(3), out["max_errors"])
	assert.Equal(t, true, out["strict_optional"])
	assert.Len(t, out, DefaultRegistry().Len())
}

// TestDecodeInvalidTargets tests error cases for decode targets
func TestDecodeInvalidTargets(t *testing.T) {
	resolved := mustLoad(t, "").Resolve("app")

	tests := []struct {
		name   string
		target any
	}{
		{"Nil", nil},
		{"NonPointer", struct{}{}},
		{"NilStructPointer", (*struct{})(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := resolved.Decode(tt.target)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must be a non-nil pointer")
		})
	}
}

// TestDecodeIgnoresUnknownFields tests that extra struct fields stay zero
func TestDecodeIgnoresUnknownFields(t *testing.T) {
	type settings struct {
		Platform  string `typeconf:"platform"`
		Unrelated string `typeconf:"no_such_option"`
	}

	resolved := mustLoad(t, "[global]\nplatform = linux\n").Resolve("app")

	var s settings
	require.NoError(t, resolved.Decode(&s))
	assert.Equal(t, "linux", s.Platform)
	assert.Empty(t, s.Unrelated)
}
