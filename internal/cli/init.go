package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend           string `yaml:"backend"`
	DataFile          string `yaml:"data_file,omitempty"`
	LowStockThreshold int    `yaml:"low_stock_threshold"`
	LogLevel          string `yaml:"log_level"`
	LogFormat         string `yaml:"log_format"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize stockroom configuration and inventory",
		Long:  "Create the configuration directory and config.yaml, then create an empty inventory file if none exists.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	// Flags given to init become the persisted defaults.
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), flags.backend, flags.dataFile); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if _, err := s.store.Load(); err != nil {
		if !errors.Is(err, types.ErrStoreNotFound) {
			return userError(fmt.Errorf("existing inventory is unusable: %w", err))
		}
		if err := s.ledger.Save(types.NewStock()); err != nil {
			return sysError(fmt.Errorf("initialize inventory: %w", err))
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Stockroom initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, backend, dataFile string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if backend == "" {
		backend = types.BackendJSON
	}
	if dataFile != "" {
		abs, err := filepath.Abs(dataFile)
		if err != nil {
			return err
		}
		dataFile = abs
	}

	cfg := configFile{
		Backend:           backend,
		DataFile:          dataFile,
		LowStockThreshold: types.DefaultLowStockThreshold,
		LogLevel:          defaultLogLevel,
		LogFormat:         defaultLogFormat,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
