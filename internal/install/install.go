// Package install locates the directory the taurus-monitors binary was
// installed under.
package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// binDir is stripped from the executable's directory when present, so a
// binary at /opt/taurus/bin/taurus-monitors reports /opt/taurus.
const binDir = "bin"

// ErrUnresolved indicates the installation root could not be determined.
var ErrUnresolved = errors.New("installation root could not be resolved")

// Locator returns an absolute installation root.
type Locator func() (string, error)

var executable = os.Executable

// Root resolves the installation root of the running program.
func Root() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("%w: locate executable: %v", ErrUnresolved, err)
	}
	return rootFromExecutable(exe)
}

func rootFromExecutable(exe string) (string, error) {
	if exe == "" {
		return "", fmt.Errorf("%w: empty executable path", ErrUnresolved)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolved, err)
	}

	dir := filepath.Dir(abs)
	if filepath.Base(dir) == binDir {
		dir = filepath.Dir(dir)
	}
	return dir, nil
}
