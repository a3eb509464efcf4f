// Shared helpers for stockroom CLI commands.
package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/ledger"
	"github.com/mesh-intelligence/stockroom/internal/logger"
	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/internal/store"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// defaultDataFiles names the inventory file per backend when neither flag,
// config, nor environment sets one.
var defaultDataFiles = map[string]string{
	types.BackendJSON:   types.DefaultDataFile,
	types.BackendSQLite: "inventory.db",
}

// session is everything a command needs for one run.
type session struct {
	cfg    types.Config
	log    *logger.Logger
	store  types.Store
	ledger *ledger.Ledger
}

// close flushes buffered log entries.
func (s *session) close() {
	_ = s.log.Close()
}

// openSession resolves configuration, builds the logger on the command's
// output, and opens the configured store. The caller must defer close.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, logCfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logCfg, cmd.OutOrStdout())
	if err != nil {
		return nil, userError(fmt.Errorf("configure logging: %w", err))
	}
	log = log.WithSession(newSessionID())

	st, err := store.Open(cfg)
	if err != nil {
		return nil, userError(fmt.Errorf("open store: %w", err))
	}

	return &session{
		cfg:    cfg,
		log:    log,
		store:  st,
		ledger: ledger.New(st, log, cfg.LowStockThreshold),
	}, nil
}

// resolveConfig merges flags, config.yaml, and environment into the store
// and logger configuration.
func resolveConfig() (types.Config, logger.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, logger.Config{}, sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, logger.Config{}, sysError(fmt.Errorf("load config: %w", err))
	}

	backend := v.GetString(cfgKeyBackend)
	if flags.backend != "" {
		backend = flags.backend
	}

	defaultName, ok := defaultDataFiles[backend]
	if !ok {
		return types.Config{}, logger.Config{}, userError(fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend))
	}

	dataFile, err := paths.ResolveDataFile(flags.dataFile, v.GetString(cfgKeyDataFile), defaultName)
	if err != nil {
		return types.Config{}, logger.Config{}, sysError(fmt.Errorf("resolve data file: %w", err))
	}

	cfg := types.Config{
		Backend:           backend,
		DataFile:          dataFile,
		LowStockThreshold: v.GetInt(cfgKeyThreshold),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, logger.Config{}, userError(fmt.Errorf("invalid config: %w", err))
	}

	logCfg := logger.Config{
		Level:  v.GetString(cfgKeyLogLevel),
		Format: v.GetString(cfgKeyLogFormat),
	}
	if flags.logLevel != "" {
		logCfg.Level = flags.logLevel
	}

	return cfg, logCfg, nil
}

// newSessionID generates a UUID v7 correlating the log entries of one run.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
