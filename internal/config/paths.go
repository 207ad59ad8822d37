package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/numenta/taurus-monitors/internal/install"
)

const (
	// EnvConfPath overrides the configuration directory.
	EnvConfPath = "TAURUS_MONITORS_DB_CONFIG_PATH"
	// ConfSubdir is the configuration directory below the installation root.
	ConfSubdir = "conf"
)

// LookupFunc reads an environment variable, matching os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Paths holds the directories resolved at startup.
type Paths struct {
	// Home is the installation root.
	Home string
	// ConfDir holds the monitors' configuration files.
	ConfDir string
}

// File returns the path of a configuration file inside ConfDir.
func (p Paths) File(name string) string {
	return filepath.Join(p.ConfDir, name)
}

// ResolvePaths determines the installation root and the configuration
// directory. A non-empty EnvConfPath wins; otherwise ConfDir is
// <Home>/conf.
func ResolvePaths(lookup LookupFunc, locate install.Locator) (Paths, error) {
	home, err := locate()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve install root: %w", err)
	}
	if !filepath.IsAbs(home) {
		return Paths{}, fmt.Errorf("resolve install root: %w: %q is not absolute", install.ErrUnresolved, home)
	}

	confDir := filepath.Join(home, ConfSubdir)
	if override, ok := lookup(EnvConfPath); ok && override != "" {
		confDir = override
		if !filepath.IsAbs(confDir) {
			abs, err := filepath.Abs(confDir)
			if err != nil {
				return Paths{}, fmt.Errorf("resolve %s: %w", EnvConfPath, err)
			}
			confDir = abs
		}
	}

	return Paths{Home: home, ConfDir: confDir}, nil
}

var defaultPaths = sync.OnceValues(func() (Paths, error) {
	return ResolvePaths(os.LookupEnv, install.Root)
})

// DefaultPaths returns the paths of the running process. They are
// resolved on the first call and never recomputed.
func DefaultPaths() (Paths, error) {
	return defaultPaths()
}
