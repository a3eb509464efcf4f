package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// driverName is the database/sql driver registered by modernc.org/sqlite.
const driverName = "sqlite"

// Store implements types.Store on a SQLite database file. Each Save
// replaces every row inside one transaction; nothing is kept open between
// calls.
type Store struct {
	path string
}

// NewStore returns a store backed by the database file at path.
// The file is created on first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ types.Store = (*Store)(nil)

// Path returns the database file.
func (s *Store) Path() string {
	return s.path
}

// Load reads all items ordered by position.
// Returns ErrStoreNotFound if the file does not exist and ErrMalformedData
// if it is not a database holding the items table.
func (s *Store) Load() (*types.Stock, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, types.ErrStoreNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", s.path, err)
	}

	db, err := sql.Open(driverName, s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer db.Close()

	rows, err := db.Query(selectItems)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrMalformedData, s.path, err)
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		var it types.Item
		if err := rows.Scan(&it.Name, &it.Quantity); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrMalformedData, s.path, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrMalformedData, s.path, err)
	}

	return types.StockFromItems(items), nil
}

// Save replaces the stored items with the contents of stock.
func (s *Store) Save(stock *types.Stock) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	db, err := sql.Open(driverName, s.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer db.Close()

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteItems); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}

	stmt, err := tx.Prepare(insertItem)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, it := range stock.Items() {
		if _, err := stmt.Exec(it.Name, it.Quantity, i); err != nil {
			return fmt.Errorf("inserting %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}
