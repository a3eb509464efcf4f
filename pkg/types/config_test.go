package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataFile: "inventory.json"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataFile: "inventory.json"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "empty data file returns ErrDataFileEmpty",
			config:  Config{Backend: BackendJSON},
			wantErr: ErrDataFileEmpty,
		},
		{
			name:    "negative threshold returns ErrInvalidThreshold",
			config:  Config{Backend: BackendJSON, DataFile: "inventory.json", LowStockThreshold: -1},
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "zero threshold is valid",
			config:  Config{Backend: BackendJSON, DataFile: "inventory.json", LowStockThreshold: 0},
			wantErr: nil,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: BackendSQLite, DataFile: "inventory.db", LowStockThreshold: 3},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
