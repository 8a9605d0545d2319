// FILE: typeconf/discovery_test.go
package typeconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiscover tests configuration file discovery
func TestDiscover(t *testing.T) {
	t.Run("EnvVarWins", func(t *testing.T) {
		dir := t.TempDir()
		envPath := filepath.Join(dir, "from-env.ini")
		require.NoError(t, os.WriteFile(envPath, []byte("[global]\n"), 0644))

		probed := filepath.Join(dir, "typeconf.ini")
		require.NoError(t, os.WriteFile(probed, []byte("[global]\n"), 0644))

		t.Setenv("TYPECONF_CONFIG", envPath)

		opts := DefaultDiscoveryOptions()
		opts.Paths = []string{dir}

		path, found := Discover(opts)
		require.True(t, found)
		assert.Equal(t, envPath, path, "the environment variable beats directory probing")
	})

	t.Run("EnvVarIsNotProbed", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "does-not-exist.ini")
		t.Setenv("TYPECONF_CONFIG", missing)

		path, found := Discover(DefaultDiscoveryOptions())
		require.True(t, found)
		assert.Equal(t, missing, path, "an explicit path is taken at face value")
	})

	t.Run("ExplicitPaths", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".typeconf.ini"), []byte("[global]\n"), 0644))

		path, found := Discover(DiscoveryOptions{
			Names: DefaultFileNames,
			Paths: []string{dir},
		})
		require.True(t, found)
		assert.Equal(t, filepath.Join(dir, ".typeconf.ini"), path)
	})

	t.Run("NameOrderWithinADirectory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "typeconf.ini"), []byte(""), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".typeconf.ini"), []byte(""), 0644))

		path, found := Discover(DiscoveryOptions{
			Names: DefaultFileNames,
			Paths: []string{dir},
		})
		require.True(t, found)
		assert.Equal(t, filepath.Join(dir, "typeconf.ini"), path)
	})

	t.Run("DirectoriesAreSkipped", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "typeconf.ini"), 0755))

		_, found := Discover(DiscoveryOptions{
			Names: DefaultFileNames,
			Paths: []string{dir},
		})
		assert.False(t, found)
	})

	t.Run("NothingFound", func(t *testing.T) {
		_, found := Discover(DiscoveryOptions{
			Names: DefaultFileNames,
			Paths: []string{t.TempDir()},
		})
		assert.False(t, found)
	})
}

// TestBuilderWithDiscovery tests discovery wired into the builder
func TestBuilderWithDiscovery(t *testing.T) {
	t.Run("FoundFileIsLoaded", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "typeconf.ini")
		require.NoError(t, os.WriteFile(path, []byte("[global]\nmax_errors = 33\n"), 0644))

		file, err := NewBuilder().
			WithDiscovery(DiscoveryOptions{Names: DefaultFileNames, Paths: []string{dir}}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, path, file.Name())

		maxErrors, err := file.Resolve("app").Int64("max_errors")
		require.NoError(t, err)
		assert.Equal(t, int64(33), maxErrors)
	})

	t.Run("NothingFoundMeansDefaults", func(t *testing.T) {
		file, err := NewBuilder().
			WithDiscovery(DiscoveryOptions{Names: DefaultFileNames, Paths: []string{t.TempDir()}}).
			Build()
		require.NoError(t, err)

		strict, err := file.Resolve("app").Bool("strict_optional")
		require.NoError(t, err)
		assert.True(t, strict)
	})

	t.Run("RejectsCombinationWithText", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "typeconf.ini"), []byte("[global]\n"), 0644))

		_, err := NewBuilder().
			WithText("inline.ini", "[global]\nmax_errors = 1\n").
			WithDiscovery(DiscoveryOptions{Names: DefaultFileNames, Paths: []string{dir}}).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be combined")
	})
}
