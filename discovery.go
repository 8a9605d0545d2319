// FILE: typeconf/discovery.go
package typeconf

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileNames are the configuration file names probed, in order, when
// no explicit path is given.
var DefaultFileNames = []string{"typeconf.ini", ".typeconf.ini"}

// DiscoveryOptions configures automatic configuration file discovery.
type DiscoveryOptions struct {
	// Names are the candidate file names, probed in order.
	Names []string

	// Paths are extra directories searched before the standard ones.
	Paths []string

	// EnvVar names an environment variable holding an explicit path.
	EnvVar string

	// UseCurrentDir searches the working directory.
	UseCurrentDir bool

	// UseXDG searches the XDG configuration directories.
	UseXDG bool
}

// DefaultDiscoveryOptions returns the standard discovery behavior: the
// TYPECONF_CONFIG environment variable, then the working directory, then
// the user's XDG configuration directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Names:         DefaultFileNames,
		EnvVar:        "TYPECONF_CONFIG",
		UseCurrentDir: true,
		UseXDG:        true,
	}
}

// Discover locates a configuration file. An explicit path in the
// environment variable wins; otherwise each search directory is probed for
// each candidate name. The boolean reports whether anything was found.
func Discover(opts DiscoveryOptions) (string, bool) {
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path, true
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}
	if opts.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths("typeconf")...)
	}

	for _, dir := range searchPaths {
		for _, name := range opts.Names {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}
	}

	return "", false
}

// WithDiscovery locates the configuration file with opts and uses it for
// the build. Finding nothing is not an error; the build proceeds with an
// empty file and registered defaults.
func (b *Builder) WithDiscovery(opts DiscoveryOptions) *Builder {
	if b.hasText {
		b.err = fmt.Errorf("WithDiscovery cannot be combined with WithText")
		return b
	}
	if path, found := Discover(opts); found {
		b.path = path
	}
	return b
}

// xdgConfigPaths returns XDG-compliant search directories for appName.
func xdgConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
