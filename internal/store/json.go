// Package store opens the configured persistence backend for a Stock.
// This file provides the JSON file backend with atomic persistence.
package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// jsonIndent matches the four-space layout of hand-edited inventory files.
const jsonIndent = "    "

// JSONStore implements types.Store using a single JSON object file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store that reads and writes path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

var _ types.Store = (*JSONStore)(nil)

// Path returns the backing file.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the inventory object from disk.
func (s *JSONStore) Load() (*types.Stock, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, types.ErrStoreNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	stock := types.NewStock()
	if err := stock.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return stock, nil
}

// Save writes the stock as an indented JSON object using the temp-file,
// fsync, rename pattern. The previous file stays intact if any step fails.
func (s *JSONStore) Save(stock *types.Stock) error {
	data, err := json.MarshalIndent(stock, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encoding stock: %w", err)
	}
	data = append(data, '\n')
	return writeFileAtomic(s.path, data)
}

// writeFileAtomic replaces path with data. The temp file lives in the same
// directory so the final rename does not cross filesystems.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".inventory-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing data: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
