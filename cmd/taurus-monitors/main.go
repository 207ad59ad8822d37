package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/numenta/taurus-monitors/internal/config"
	"github.com/numenta/taurus-monitors/internal/logging"
	"github.com/numenta/taurus-monitors/internal/monitoring"
)

var (
	initEnvironment = monitoring.Init
	newLogger       = monitoring.LoggingSupport
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "taurus-monitors: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("taurus-monitors", "Taurus monitors - resolves installation and configuration locations")
	kingpinApp.UsageWriter(stdout)
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	logLevel := kingpinApp.Flag("log-level", "Minimum log level (debug, info, warn, error)").String()
	logEncoding := kingpinApp.Flag("log-encoding", "Log encoding (json or console)").String()

	pathsCmd := kingpinApp.Command("paths", "Print the installation root and configuration directory")
	checkCmd := kingpinApp.Command("check-config", "Load and validate the monitors configuration")

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	env, err := initEnvironment()
	if err != nil {
		return err
	}

	switch command {
	case pathsCmd.FullCommand():
		_, err := fmt.Fprintf(stdout, "home=%s\nconf_dir=%s\n", env.Home, env.ConfDir)
		return err
	case checkCmd.FullCommand():
		overrides := &config.CLIOverrides{ConfigFile: *configFile}
		if *logLevel != "" {
			overrides.LogLevel = logLevel
		}
		if *logEncoding != "" {
			overrides.LogEncoding = logEncoding
		}
		return checkConfig(env, overrides)
	}

	return fmt.Errorf("unknown command %q", command)
}

func checkConfig(env monitoring.Environment, overrides *config.CLIOverrides) error {
	cfg, err := config.Load(env.Paths, overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(logging.Options{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("configuration loaded",
		zap.String("home", cfg.Paths.Home),
		zap.String("conf_dir", cfg.Paths.ConfDir),
		zap.String("db_addr", cfg.Database.Address()),
		zap.String("db_user", cfg.Database.User),
		zap.String("db_name", cfg.Database.Name),
		zap.Bool("db_password_set", cfg.Database.Password != ""),
	)
	return nil
}
