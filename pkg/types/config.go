package types

import "errors"

// Config holds backend selection and parameters for opening a Store.
type Config struct {
	Backend           string `json:"backend" yaml:"backend"`
	DataFile          string `json:"data_file" yaml:"data_file"`
	LowStockThreshold int    `json:"low_stock_threshold" yaml:"low_stock_threshold"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DefaultDataFile is the file name used when no data file is configured.
const DefaultDataFile = "inventory.json"

// Config validation errors.
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrDataFileEmpty    = errors.New("data file must not be empty")
	ErrInvalidThreshold = errors.New("low stock threshold must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.DataFile == "" {
		return ErrDataFileEmpty
	}
	if c.LowStockThreshold < 0 {
		return ErrInvalidThreshold
	}
	return nil
}
