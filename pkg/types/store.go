package types

import "errors"

// Store persists a whole Stock to a single file, replacing prior contents.
// Implementations hold no stock between calls.
type Store interface {
	// Load reads the persisted stock.
	// Returns ErrStoreNotFound if the file does not exist and
	// ErrMalformedData if its content is not an item to quantity mapping.
	Load() (*Stock, error)

	// Save overwrites the persisted stock with s.
	Save(s *Stock) error

	// Path returns the file the store reads and writes.
	Path() string
}

// ErrStoreNotFound is returned by Load on first run, before anything has
// been saved.
var ErrStoreNotFound = errors.New("inventory file not found")
