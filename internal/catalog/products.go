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

type Products struct {
	col docstore.Collection
	now func() time.Time
}

func NewProducts(store docstore.Store) *Products {
	return &Products{col: store.Collection("products"), now: time.Now}
}

func decodeProduct(doc docstore.Document) models.Product {
	var p models.Product
	_ = json.Unmarshal(doc.Data, &p)
	p.ID = doc.ID
	if p.Sizes == nil {
		p.Sizes = []models.ProductSize{}
	}
	return p
}

// List returns all products, newest first.
func (s *Products) List(ctx context.Context) ([]models.Product, error) {
	docs, err := s.col.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, decodeProduct(doc))
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt > products[j].CreatedAt
	})
	return products, nil
}

func (s *Products) Get(ctx context.Context, id string) (models.Product, error) {
	doc, err := s.col.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	return decodeProduct(doc), nil
}

type ProductInput struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Price       float64              `json:"price"`
	Image       string               `json:"image"`
	Category    string               `json:"category"`
	Sizes       []models.ProductSize `json:"sizes"`
}

func (s *Products) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	id := uuid.NewString()
	now := s.now().UTC().Format(time.RFC3339)

	p := models.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Sizes:       in.Sizes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Sizes == nil {
		p.Sizes = []models.ProductSize{}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to encode product: %w", err)
	}
	if err := s.col.Insert(ctx, id, data); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Update replaces the whole product document; two admins editing the
// same product race to a last-write-wins outcome, silently.
func (s *Products) Update(ctx context.Context, id string, in ProductInput) (models.Product, error) {
	doc, err := s.col.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	existing := decodeProduct(doc)

	p := models.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Sizes:       in.Sizes,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   s.now().UTC().Format(time.RFC3339),
	}
	if p.Sizes == nil {
		p.Sizes = []models.ProductSize{}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to encode product: %w", err)
	}
	if err := s.col.Update(ctx, id, data); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *Products) Delete(ctx context.Context, id string) error {
	return s.col.Delete(ctx, id)
}
