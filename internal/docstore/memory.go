package docstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections in process memory. It backs dev mode
// (no DSN configured) and the test suites.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollection{docs: make(map[string]json.RawMessage)}
		s.collections[name] = c
	}
	return c
}

type memoryCollection struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
}

func (c *memoryCollection) List(ctx context.Context) ([]Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var docs []Document
	for id, data := range c.docs {
		docs = append(docs, Document{ID: id, Data: cloneRaw(data)})
	}
	return docs, nil
}

func (c *memoryCollection) Get(ctx context.Context, id string) (Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.docs[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Data: cloneRaw(data)}, nil
}

func (c *memoryCollection) Insert(ctx context.Context, id string, data json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[id] = cloneRaw(data)
	return nil
}

func (c *memoryCollection) Update(ctx context.Context, id string, data json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	c.docs[id] = cloneRaw(data)
	return nil
}

func (c *memoryCollection) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, id)
	return nil
}

func cloneRaw(data json.RawMessage) json.RawMessage {
	cp := make(json.RawMessage, len(data))
	copy(cp, data)
	return cp
}
