// Package sqlite implements the SQLite storage backend for stockroom.
package sqlite

// Schema DDL. position preserves the insertion order of the stock.
const (
	createItems = `CREATE TABLE IF NOT EXISTS items (
    name TEXT PRIMARY KEY,
    quantity INTEGER NOT NULL,
    position INTEGER NOT NULL
);`

	idxItemsPosition = `CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);`
)

// schemaDDL lists the statements run before every save.
var schemaDDL = []string{
	createItems,
	idxItemsPosition,
}

const (
	selectItems = `SELECT name, quantity FROM items ORDER BY position`
	deleteItems = `DELETE FROM items`
	insertItem  = `INSERT INTO items (name, quantity, position) VALUES (?, ?, ?)`
)
