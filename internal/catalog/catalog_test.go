package catalog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/models"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestCategoriesCreateListSorted(t *testing.T) {
	mem := docstore.NewMemoryStore()
	categories := NewCategories(mem)
	categories.now = fixedClock
	ctx := context.Background()

	_, err := categories.Create(ctx, CategoryInput{Name: "Rustic"})
	require.NoError(t, err)
	_, err = categories.Create(ctx, CategoryInput{Name: "Classic", Description: "Wood"})
	require.NoError(t, err)

	list, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Classic", list[0].Name)
	assert.Equal(t, "Rustic", list[1].Name)
	assert.Equal(t, fixedNow.Format(time.RFC3339), list[0].CreatedAt)
}

func TestCategoriesUpdateKeepsCreatedAt(t *testing.T) {
	mem := docstore.NewMemoryStore()
	categories := NewCategories(mem)
	categories.now = fixedClock
	ctx := context.Background()

	created, err := categories.Create(ctx, CategoryInput{Name: "Gallery"})
	require.NoError(t, err)

	categories.now = func() time.Time { return fixedNow.Add(time.Hour) }
	updated, err := categories.Update(ctx, created.ID, CategoryInput{Name: "Gallery Wall"})
	require.NoError(t, err)

	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, fixedNow.Add(time.Hour).Format(time.RFC3339), updated.UpdatedAt)
}

// Deleting a category neither deletes nor errors on products whose
// category string references it.
func TestCategoryDeleteDoesNotCascade(t *testing.T) {
	mem := docstore.NewMemoryStore()
	categories := NewCategories(mem)
	products := NewProducts(mem)
	ctx := context.Background()

	cat, err := categories.Create(ctx, CategoryInput{Name: "Classic"})
	require.NoError(t, err)
	prod, err := products.Create(ctx, ProductInput{Name: "Framed Poster", Category: "Classic"})
	require.NoError(t, err)

	require.NoError(t, categories.Delete(ctx, cat.ID))

	got, err := products.Get(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, "Classic", got.Category)
}

func TestProductDefaultsForSparseRecords(t *testing.T) {
	mem := docstore.NewMemoryStore()
	products := NewProducts(mem)
	ctx := context.Background()

	// A record written by an older tool with most fields absent.
	require.NoError(t, mem.Collection("products").Insert(ctx, "sparse-1", json.RawMessage(`{"name":"Bare"}`)))

	got, err := products.Get(ctx, "sparse-1")
	require.NoError(t, err)
	assert.Equal(t, "Bare", got.Name)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, 0.0, got.Price)
	assert.Equal(t, "", got.Image)
	assert.Equal(t, []models.ProductSize{}, got.Sizes)
}

func TestProductUpdateLastWriteWins(t *testing.T) {
	mem := docstore.NewMemoryStore()
	products := NewProducts(mem)
	ctx := context.Background()

	created, err := products.Create(ctx, ProductInput{Name: "Canvas", Price: 10, Description: "first desc"})
	require.NoError(t, err)

	// Two admins race; the second full update lands last.
	_, err = products.Update(ctx, created.ID, ProductInput{Name: "Canvas A", Price: 20, Description: "from first admin"})
	require.NoError(t, err)
	_, err = products.Update(ctx, created.ID, ProductInput{Name: "Canvas B", Price: 30})
	require.NoError(t, err)

	got, err := products.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Canvas B", got.Name)
	assert.Equal(t, 30.0, got.Price)
	assert.Equal(t, "", got.Description, "field from the first admin's update survived")
}

func TestFramesSizeOptions(t *testing.T) {
	mem := docstore.NewMemoryStore()
	frames := NewFrames(mem)
	ctx := context.Background()

	created, err := frames.Create(ctx, FrameInput{
		Name: "Oak Classic",
		AvailableSizes: []models.FrameSize{
			{Dimensions: "8x10 in", Price: 29.99},
			{Dimensions: "16x20 in", Price: 69.99, Description: "Most popular"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.AvailableSizes, 2)
	assert.NotEmpty(t, created.AvailableSizes[0].ID)
	assert.NotEmpty(t, created.AvailableSizes[1].ID)

	got, err := frames.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.AvailableSizes, got.AvailableSizes)
}

func TestFrameDeleteReturnsImagePublicID(t *testing.T) {
	mem := docstore.NewMemoryStore()
	frames := NewFrames(mem)
	ctx := context.Background()

	created, err := frames.Create(ctx, FrameInput{Name: "Walnut", Image: "https://img/w.jpg", ImagePublicID: "framecraft/w1"})
	require.NoError(t, err)

	publicID, err := frames.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "framecraft/w1", publicID)

	_, err = frames.Get(ctx, created.ID)
	require.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestFrameDeleteMissingIsNoop(t *testing.T) {
	mem := docstore.NewMemoryStore()
	frames := NewFrames(mem)

	publicID, err := frames.Delete(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "", publicID)
}
