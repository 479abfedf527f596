package docstore

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMemoryCollectionCRUD(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("things")

	if err := col.Insert(ctx, "a", json.RawMessage(`{"n":1}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	doc, err := col.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(doc.Data) != `{"n":1}` {
		t.Fatalf("unexpected doc data: %s", doc.Data)
	}

	docs, err := col.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(docs))
	}

	if err := col.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := col.Get(ctx, "a"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryCollectionUpdateMissing(t *testing.T) {
	col := NewMemoryStore().Collection("things")
	if err := col.Update(context.Background(), "nope", json.RawMessage(`{}`)); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Updates replace the whole document: nothing from the first write
// survives where the second write touched the same document.
func TestMemoryCollectionLastWriteWins(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("products")

	if err := col.Insert(ctx, "p1", json.RawMessage(`{"name":"old","price":10,"onlyInFirst":true}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// First admin's edit.
	if err := col.Update(ctx, "p1", json.RawMessage(`{"name":"first","price":20,"onlyInFirst":true}`)); err != nil {
		t.Fatalf("first update: %v", err)
	}
	// Second admin's edit lands later.
	if err := col.Update(ctx, "p1", json.RawMessage(`{"name":"second","price":30}`)); err != nil {
		t.Fatalf("second update: %v", err)
	}

	doc, err := col.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(doc.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["name"] != "second" || got["price"] != 30.0 {
		t.Fatalf("second write did not win: %v", got)
	}
	if _, ok := got["onlyInFirst"]; ok {
		t.Fatalf("field from first write survived the replace: %v", got)
	}
}

func TestMemoryCollectionIsolatesCallers(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("things")

	data := json.RawMessage(`{"n":1}`)
	if err := col.Insert(ctx, "a", data); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// Mutating the caller's slice must not change the stored doc.
	data[5] = '9'

	doc, err := col.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(doc.Data) != `{"n":1}` {
		t.Fatalf("stored doc was aliased: %s", doc.Data)
	}
}
