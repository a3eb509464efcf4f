package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend   = "backend"
	cfgKeyDataFile  = "data_file"
	cfgKeyThreshold = "low_stock_threshold"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Stockroom configuration

# Storage backend: json or sqlite
backend: json

# Inventory file (optional; overridable by --data-file flag)
# data_file:

# Items below this quantity are reported as low stock
low_stock_threshold: 5

# Logging
log_level: info
log_format: console
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendJSON)
	v.SetDefault(cfgKeyThreshold, types.DefaultLowStockThreshold)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// data_file is resolved by the paths package, which owns its env var.
	v.BindEnv(cfgKeyBackend, "STOCKROOM_BACKEND")
	v.BindEnv(cfgKeyThreshold, "STOCKROOM_LOW_STOCK_THRESHOLD")
	v.BindEnv(cfgKeyLogLevel, "STOCKROOM_LOG_LEVEL")
	v.BindEnv(cfgKeyLogFormat, "STOCKROOM_LOG_FORMAT")

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

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
