// Package monitoring is the entry point shared by the Taurus monitors.
// Monitors import it to find the installation and configuration
// directories and to set up logging.
package monitoring

import (
	"fmt"

	"github.com/numenta/taurus-monitors/internal/config"
	"github.com/numenta/taurus-monitors/internal/logging"
)

// LoggingSupport sets up the monitors' structured logger.
var LoggingSupport = logging.New

// Environment carries the directories resolved at startup.
type Environment struct {
	config.Paths
}

// Init returns the process Environment. Paths are resolved once per
// process; a missing installation root is fatal to the caller.
func Init() (Environment, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return Environment{}, fmt.Errorf("initialize monitoring: %w", err)
	}
	return Environment{Paths: paths}, nil
}
