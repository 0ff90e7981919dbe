// Config loading for the swatch CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dukaforge/swatch/internal/logging"
	"github.com/dukaforge/swatch/internal/paths"
	"github.com/dukaforge/swatch/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend  = "backend"
	cfgKeyLogLevel = "log_level"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Swatch CLI configuration

# Registry backend: memory or sqlite. Both are transient; sqlite keeps its
# database in memory and exists for its SQL error surface.
backend: memory

# Log level: debug, info, warn, error
log_level: info
`

// appConfig carries the resolved configuration for one invocation.
type appConfig struct {
	registry types.Config
	logLevel slog.Level
}

// loadAppConfig reads config.yaml from the resolved config directory and
// applies flag overrides. Flag > config.yaml > default.
func loadAppConfig() (appConfig, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return appConfig{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return appConfig{}, err
	}

	backend := v.GetString(cfgKeyBackend)
	if flagBackend != "" {
		backend = flagBackend
	}

	level, err := logging.ParseLevel(v.GetString(cfgKeyLogLevel))
	if err != nil {
		return appConfig{}, fmt.Errorf("config %s: %w", cfgKeyLogLevel, err)
	}

	return appConfig{
		registry: types.Config{Backend: backend},
		logLevel: level,
	}, nil
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendMemory)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
