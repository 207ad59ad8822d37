package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the settings file looked up inside ConfDir.
const DefaultFileName = "taurus-monitors.yaml"

const (
	defaultLogLevel    = "info"
	defaultLogEncoding = "json"
	defaultDBHost      = "localhost"
	defaultDBPort      = 3306
	defaultDBUser      = "root"
	defaultDBName      = "taurus"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Paths       Paths
	LogLevel    string
	LogEncoding string
	Database    Database
}

// Database describes the monitors' MySQL database.
type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Address returns host:port.
func (d Database) Address() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Log      yamlLog      `yaml:"log"`
	Database yamlDatabase `yaml:"database"`
}

type yamlLog struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type yamlDatabase struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	LogLevel    *string
	LogEncoding *string
}

// Load merges settings for the given paths. An explicit
// overrides.ConfigFile must exist; the default file in paths.ConfDir is
// optional.
func Load(paths Paths, overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig(paths)

	yamlCfg, err := loadYAML(paths, overrides)
	if err != nil {
		return Config{}, fmt.Errorf("load YAML config: %w", err)
	}

	// Environment first so YAML values win over it.
	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}
	if yamlCfg != nil {
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func defaultConfig(paths Paths) Config {
	return Config{
		Paths:       paths,
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
		Database: Database{
			Host: defaultDBHost,
			Port: defaultDBPort,
			User: defaultDBUser,
			Name: defaultDBName,
		},
	}
}

func loadYAML(paths Paths, overrides *CLIOverrides) (*yamlConfig, error) {
	if overrides != nil && overrides.ConfigFile != "" {
		return loadFromFile(overrides.ConfigFile)
	}

	yamlCfg, err := loadFromFile(paths.File(DefaultFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return yamlCfg, err
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML %s: %w", path, err)
	}

	return &yamlCfg, nil
}

func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Log.Level != "" {
		cfg.LogLevel = yamlCfg.Log.Level
	}
	if yamlCfg.Log.Encoding != "" {
		cfg.LogEncoding = yamlCfg.Log.Encoding
	}

	db := yamlCfg.Database
	if db.Host != "" {
		cfg.Database.Host = db.Host
	}
	if db.Port != 0 {
		cfg.Database.Port = db.Port
	}
	if db.User != "" {
		cfg.Database.User = db.User
	}
	if db.Password != "" {
		cfg.Database.Password = db.Password
	}
	if db.Name != "" {
		cfg.Database.Name = db.Name
	}
}

func applyEnvConfig(cfg *Config) error {
	if level := strings.TrimSpace(os.Getenv("TAURUS_MONITORS_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}
	if encoding := strings.TrimSpace(os.Getenv("TAURUS_MONITORS_LOG_ENCODING")); encoding != "" {
		cfg.LogEncoding = encoding
	}
	if host := strings.TrimSpace(os.Getenv("TAURUS_MONITORS_DB_HOST")); host != "" {
		cfg.Database.Host = host
	}
	if port := strings.TrimSpace(os.Getenv("TAURUS_MONITORS_DB_PORT")); port != "" {
		value, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("TAURUS_MONITORS_DB_PORT must be an integer, got %q", port)
		}
		cfg.Database.Port = value
	}
	if user := strings.TrimSpace(os.Getenv("TAURUS_MONITORS_DB_USER")); user != "" {
		cfg.Database.User = user
	}
	if password := os.Getenv("TAURUS_MONITORS_DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if name := strings.TrimSpace(os.Getenv("TAURUS_MONITORS_DB_NAME")); name != "" {
		cfg.Database.Name = name
	}
	return nil
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
	if overrides.LogEncoding != nil && *overrides.LogEncoding != "" {
		cfg.LogEncoding = *overrides.LogEncoding
	}
}

func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if cfg.LogEncoding != "json" && cfg.LogEncoding != "console" {
		return fmt.Errorf("log encoding must be json or console, got %q", cfg.LogEncoding)
	}
	if cfg.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if cfg.Database.Port <= 0 || cfg.Database.Port > 65535 {
		return fmt.Errorf("database port must be between 1 and 65535, got %d", cfg.Database.Port)
	}
	if cfg.Database.Name == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	return nil
}
