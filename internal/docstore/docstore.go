// Package docstore provides named document collections with
// whole-collection scans and single-document reads and writes. Updates
// replace the whole document, so concurrent edits resolve to whatever
// was written last. There are no multi-document transactions.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// Document is a stored record: a generated identifier plus its raw
// JSON payload. Payload shape is owned by the callers, not the store.
type Document struct {
	ID   string
	Data json.RawMessage
}

// Collection is one named set of documents.
type Collection interface {
	// List scans the whole collection. Order is unspecified.
	List(ctx context.Context) ([]Document, error)
	// Get reads one document by id, returning ErrNotFound if absent.
	Get(ctx context.Context, id string) (Document, error)
	// Insert stores a new document under the given id.
	Insert(ctx context.Context, id string, data json.RawMessage) error
	// Update replaces the document under id, returning ErrNotFound if absent.
	Update(ctx context.Context, id string, data json.RawMessage) error
	// Delete removes the document under id. Deleting an absent
	// document is not an error.
	Delete(ctx context.Context, id string) error
}

// Store hands out collections by name.
type Store interface {
	Collection(name string) Collection
}
