// FILE: typeconf/config_test.go
package typeconf

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `# checker defaults for the repository
[global]
strict_optional = true
max_errors = 50
search_path = src, stubs

; generated protobuf stubs are too noisy to check strictly
[proto.**]
disallow_untyped_defs = false
exclude = *_pb2.py

[app.cli]
platform = linux
`

// TestEngineLoad tests end-to-end loading of a realistic file
func TestEngineLoad(t *testing.T) {
	file, err := New().Load("repo.ini", sampleConfig)
	require.NoError(t, err)

	assert.Equal(t, "repo.ini", file.Name())
	require.Len(t, file.Sections(), 3)
	assert.Empty(t, file.Advisories())

	t.Run("GeneratedModule", func(t *testing.T) {
		resolved := file.Resolve("proto.gen.v1")

		patterns, err := resolved.Globs("exclude")
		require.NoError(t, err)
		assert.Equal(t, []string{"*_pb2.py"}, patterns)

		paths, err := resolved.StringList("search_path")
		require.NoError(t, err)
		assert.Equal(t, []string{"src", "stubs"}, paths)
	})

	t.Run("CLIModule", func(t *testing.T) {
		resolved := file.Resolve("app.cli")

		platform, err := resolved.String("platform")
		require.NoError(t, err)
		assert.Equal(t, "linux", platform)

		maxErrors, err := resolved.Int64("max_errors")
		require.NoError(t, err)
		assert.Equal(t, int64(50), maxErrors)
	})
}

// TestEngineLoadAggregatesIssues tests that every problem is reported at once
func TestEngineLoadAggregatesIssues(t *testing.T) {
	text := "[global\n" +
		"strict_optional = absolutely\n" +
		"[global]\n" +
		"max_errors = many\n" +
		"mystery = 1\n"

	file, err := New().Load("broken.ini", text)
	require.Error(t, err)
	assert.Nil(t, file, "no file is returned alongside an error")

	issues := Issues(err)
	require.Len(t, issues, 3)
	assert.ErrorIs(t, issues[0], ErrMalformedSelector)
	assert.Equal(t, 1, issues[0].Line)
	assert.ErrorIs(t, issues[1], ErrInvalidValue)
	assert.Equal(t, 4, issues[1].Line)
	assert.ErrorIs(t, issues[2], ErrUnknownOption)
	assert.Equal(t, 5, issues[2].Line)
}

// TestEngineLoadFile tests loading from disk
func TestEngineLoadFile(t *testing.T) {
	t.Run("Existing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "typeconf.ini")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

		file, err := New().LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, file.Name())
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := New().LoadFile(filepath.Join(t.TempDir(), "nope.ini"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// TestEngineDescribe tests option introspection through the engine
func TestEngineDescribe(t *testing.T) {
	engine := New()

	spec, err := engine.Describe("strict_optional")
	require.NoError(t, err)
	assert.Equal(t, KindBool, spec.Kind)
	assert.NotEmpty(t, spec.Description)

	_, err = engine.Describe("mystery")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

// TestEngineCustomRegistry tests engines over caller-supplied registries
func TestEngineCustomRegistry(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(OptionSpec{Name: "enabled", Kind: KindBool, Default: false}))

	t.Run("OwnOptionsOnly", func(t *testing.T) {
		engine := NewWithRegistry(registry)

		file, err := engine.Load("", "[global]\nenabled = yes\n")
		require.NoError(t, err)

		enabled, err := file.Resolve("any").Bool("enabled")
		require.NoError(t, err)
		assert.True(t, enabled)

		_, err = engine.Load("", "[global]\nstrict_optional = true\n")
		require.Error(t, err, "catalog options are unknown to a custom registry")
		assert.ErrorIs(t, err, ErrUnknownOption)
	})

	t.Run("NilRegistryMeansEmpty", func(t *testing.T) {
		engine := NewWithRegistry(nil)
		assert.Equal(t, 0, engine.Registry().Len())

		_, err := engine.Load("", "[global]\nenabled = yes\n")
		assert.ErrorIs(t, err, ErrUnknownOption)
	})
}

// TestFileEncodeRoundTrip tests that canonical output reloads equivalently
func TestFileEncodeRoundTrip(t *testing.T) {
	text := sampleConfig +
		"\n[plugins.custom]\n" +
		"plugin_options = first\n" +
		"    second\n"

	original, err := New().Load("a.ini", text)
	require.NoError(t, err)

	encoded := original.String()
	reloaded, err := New().Load("b.ini", encoded)
	require.NoError(t, err)

	assert.Equal(t, encoded, reloaded.String(), "canonical form is a fixed point")

	for _, module := range []string{"proto.gen.v1", "app.cli", "plugins.custom", "unrelated"} {
		assert.Equal(t,
			original.Resolve(module).Options(),
			reloaded.Resolve(module).Options(),
			"module %s resolves identically after a round trip", module)
	}

	t.Run("MultiLineValueSurvives", func(t *testing.T) {
		opaque, err := reloaded.Resolve("plugins.custom").String("plugin_options")
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond", opaque)
	})
}

// TestResolvedEncodeRoundTrip tests that a flattened resolution reloads into
// the same effective values
func TestResolvedEncodeRoundTrip(t *testing.T) {
	file, err := New().Load("repo.ini", sampleConfig)
	require.NoError(t, err)
	resolved := file.Resolve("proto.gen.v1")

	var buf strings.Builder
	require.NoError(t, resolved.Encode(&buf))

	reloaded, err := New().Load("flat.ini", buf.String())
	require.NoError(t, err)
	again := reloaded.Resolve("proto.gen.v1")

	assert.Equal(t, resolved.Options(), again.Options())

	for name := range resolved.Options() {
		if !resolved.Explicit(name) {
			continue
		}
		require.True(t, again.Explicit(name), "option %s stays explicit", name)
		origin, ok := again.Origin(name)
		require.True(t, ok)
		assert.Equal(t, SourceGlobal, origin.Source)
	}
}

// TestFileWriteFile tests atomic persistence of the canonical form
func TestFileWriteFile(t *testing.T) {
	file, err := New().Load("", sampleConfig)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "dir", "typeconf.ini")
	require.NoError(t, file.WriteFile(path))

	reloaded, err := New().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, file.String(), reloaded.String())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

// TestEngineConcurrentLoad tests concurrent loads through one engine
func TestEngineConcurrentLoad(t *testing.T) {
	engine := New()

	var wg sync.WaitGroup
	errs := make(chan error, 100)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if _, err := engine.Load("", sampleConfig); err != nil {
					errs <- err
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent load: %v", err)
	}
}
