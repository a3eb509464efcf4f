package store

import (
	"fmt"

	"github.com/mesh-intelligence/stockroom/internal/sqlite"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Open validates cfg and returns the Store for its backend.
func Open(cfg types.Config) (types.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch cfg.Backend {
	case types.BackendJSON:
		return NewJSONStore(cfg.DataFile), nil
	case types.BackendSQLite:
		return sqlite.NewStore(cfg.DataFile), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}
