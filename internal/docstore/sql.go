package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/framecraft/admin/internal/database"
)

// SQLStore backs collections with one MySQL/TiDB table each
// (id VARCHAR(36) PRIMARY KEY, doc JSON NOT NULL).
type SQLStore struct {
	db *database.DB
}

func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Collection(name string) Collection {
	return &sqlCollection{db: s.db, table: name}
}

type sqlCollection struct {
	db    *database.DB
	table string
}

func (c *sqlCollection) List(ctx context.Context) ([]Document, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf("SELECT id, doc FROM %s", c.table))
	if err != nil {
		return nil, fmt.Errorf("failed to scan collection %s: %w", c.table, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		var raw []byte
		if err := rows.Scan(&doc.ID, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan row in %s: %w", c.table, err)
		}
		doc.Data = json.RawMessage(raw)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan collection %s: %w", c.table, err)
	}

	return docs, nil
}

func (c *sqlCollection) Get(ctx context.Context, id string) (Document, error) {
	var raw []byte
	err := c.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT doc FROM %s WHERE id = ?", c.table), id,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s/%s: %w", c.table, id, err)
	}

	return Document{ID: id, Data: json.RawMessage(raw)}, nil
}

func (c *sqlCollection) Insert(ctx context.Context, id string, data json.RawMessage) error {
	_, err := c.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (id, doc) VALUES (?, ?)", c.table), id, []byte(data))
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", c.table, err)
	}
	return nil
}

func (c *sqlCollection) Update(ctx context.Context, id string, data json.RawMessage) error {
	res, err := c.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET doc = ? WHERE id = ?", c.table), []byte(data), id)
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", c.table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", c.table, id, err)
	}
	if affected == 0 {
		// Could also mean the new doc equals the stored one; confirm
		// before reporting not-found.
		if _, err := c.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *sqlCollection) Delete(ctx context.Context, id string) error {
	_, err := c.db.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = ?", c.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", c.table, id, err)
	}
	return nil
}
