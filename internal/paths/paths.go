// Package paths resolves the configuration directory and inventory file
// locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName names the per-user configuration directory.
const appDirName = "stockroom"

// Environment variable names for location overrides.
const (
	EnvConfigDir = "STOCKROOM_CONFIG_DIR"
	EnvDataFile  = "STOCKROOM_DATA_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/stockroom (fallback ~/.config/stockroom)
// macOS:   ~/Library/Application Support/stockroom
// Windows: %APPDATA%/stockroom
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > STOCKROOM_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataFile returns the inventory file following the precedence chain:
// flag > configYAMLValue > STOCKROOM_DATA_FILE env > $(CWD)/defaultName.
//
// The inventory lives next to the caller by default, so a fresh checkout
// starts from ./inventory.json.
func ResolveDataFile(flag, configYAMLValue, defaultName string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, defaultName), nil
}
