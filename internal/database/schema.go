package database

import "fmt"

// Collections persisted as document tables. The storefront and the
// admin panel share these; every record is a JSON document keyed by a
// generated identifier, matching the hosted document store this service
// replaced.
var CollectionNames = []string{"users", "orders", "products", "frames", "categories"}

const collectionTableSQL = `
CREATE TABLE IF NOT EXISTS %s (
    id VARCHAR(36) PRIMARY KEY,
    doc JSON NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

// SetupSchema creates one document table per collection.
func (db *DB) SetupSchema() error {
	for _, name := range CollectionNames {
		if _, err := db.Exec(fmt.Sprintf(collectionTableSQL, name)); err != nil {
			return fmt.Errorf("failed to create collection table %s: %w", name, err)
		}
	}
	return nil
}

// DropSchema drops every collection table. Used by `setup --drop-first`.
func (db *DB) DropSchema() error {
	for _, name := range CollectionNames {
		if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", name)); err != nil {
			return fmt.Errorf("failed to drop collection table %s: %w", name, err)
		}
	}
	return nil
}
