// Package catalog holds the admin CRUD stores for categories, products
// and frames. Reads substitute defaults for absent fields (0, "",
// empty list); writes stamp updatedAt on every mutation and createdAt
// only on first insert. There is no cross-entity validation: a
// product's category string is never checked against the categories
// collection, and deleting a category leaves referencing products
// untouched.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/models"
)

type Categories struct {
	col docstore.Collection
	now func() time.Time
}

func NewCategories(store docstore.Store) *Categories {
	return &Categories{col: store.Collection("categories"), now: time.Now}
}

func decodeCategory(doc docstore.Document, now time.Time) models.Category {
	var raw struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		CreatedAt   string `json:"createdAt"`
		UpdatedAt   string `json:"updatedAt"`
	}
	// A category that fails to decode still lists with its id so the
	// admin can delete it.
	_ = json.Unmarshal(doc.Data, &raw)

	c := models.Category{
		ID:          doc.ID,
		Name:        raw.Name,
		Description: raw.Description,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}
	if c.CreatedAt == "" {
		c.CreatedAt = now.UTC().Format(time.RFC3339)
	}
	if c.UpdatedAt == "" {
		c.UpdatedAt = now.UTC().Format(time.RFC3339)
	}
	return c
}

// List returns all categories sorted by name.
func (s *Categories) List(ctx context.Context) ([]models.Category, error) {
	docs, err := s.col.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	now := s.now()
	categories := make([]models.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, decodeCategory(doc, now))
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *Categories) Create(ctx context.Context, in CategoryInput) (models.Category, error) {
	id := uuid.NewString()
	now := s.now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"createdAt":   now,
		"updatedAt":   now,
	})
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to encode category: %w", err)
	}
	if err := s.col.Insert(ctx, id, data); err != nil {
		return models.Category{}, err
	}

	return models.Category{ID: id, Name: in.Name, Description: in.Description, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *Categories) Update(ctx context.Context, id string, in CategoryInput) (models.Category, error) {
	doc, err := s.col.Get(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	existing := decodeCategory(doc, s.now())

	now := s.now().UTC().Format(time.RFC3339)
	data, err := json.Marshal(map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"createdAt":   existing.CreatedAt,
		"updatedAt":   now,
	})
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to encode category: %w", err)
	}
	if err := s.col.Update(ctx, id, data); err != nil {
		return models.Category{}, err
	}

	return models.Category{ID: id, Name: in.Name, Description: in.Description, CreatedAt: existing.CreatedAt, UpdatedAt: now}, nil
}

// Delete removes only the category document. Products referencing the
// category by name keep their stored string; no cascade, by decision.
func (s *Categories) Delete(ctx context.Context, id string) error {
	return s.col.Delete(ctx, id)
}
