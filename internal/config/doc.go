// Package config resolves where taurus-monitors keeps its configuration and
// loads runtime settings from it. The configuration directory comes from
// TAURUS_MONITORS_DB_CONFIG_PATH or defaults to <install root>/conf.
// Settings are merged with precedence: CLI flags > YAML config >
// Environment variables > Defaults.
package config
