package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framecraft/admin/internal/catalog"
	"github.com/framecraft/admin/internal/config"
	"github.com/framecraft/admin/internal/database"
	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed sample catalog data",
	Long: `Populates the categories, frames and products collections with
sample data so the panel has something to show on a fresh install.`,
	RunE: seedData,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seedData(cmd *cobra.Command, args []string) error {
	fmt.Println("🌱 Seeding sample catalog data...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DB.DSN == "" {
		return fmt.Errorf("db.dsn is not configured; seed needs a real database")
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	store := docstore.NewSQLStore(db)
	ctx := context.Background()

	fmt.Println("   🏷️  Creating categories...")
	if err := seedCategories(ctx, store); err != nil {
		return err
	}

	fmt.Println("   🖼️  Creating frames...")
	if err := seedFrames(ctx, store); err != nil {
		return err
	}

	fmt.Println("   📦 Creating products...")
	if err := seedProducts(ctx, store); err != nil {
		return err
	}

	fmt.Println("✅ Seed complete!")
	return nil
}

func seedCategories(ctx context.Context, store docstore.Store) error {
	categories := catalog.NewCategories(store)
	for _, in := range []catalog.CategoryInput{
		{Name: "Classic", Description: "Traditional wood frames"},
		{Name: "Modern", Description: "Clean metal and minimal profiles"},
		{Name: "Gallery", Description: "Wide mats, museum style"},
		{Name: "Rustic", Description: "Reclaimed and distressed finishes"},
	} {
		if _, err := categories.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

func seedFrames(ctx context.Context, store docstore.Store) error {
	frames := catalog.NewFrames(store)
	sizes := []models.FrameSize{
		{Dimensions: "8x10 in", Price: 29.99},
		{Dimensions: "11x14 in", Price: 44.99},
		{Dimensions: "16x20 in", Price: 69.99, Description: "Most popular"},
		{Dimensions: "24x36 in", Price: 119.99},
	}
	for _, in := range []catalog.FrameInput{
		{Name: "Oak Classic", Price: 49.99, Description: "Solid oak, satin finish", AvailableSizes: sizes},
		{Name: "Walnut Gallery", Price: 79.99, Description: "Deep walnut with wide mat", AvailableSizes: sizes},
		{Name: "Matte Black Metal", Price: 39.99, Description: "Thin aluminum profile", AvailableSizes: sizes[:3]},
		{Name: "Whitewash Barnwood", Price: 59.99, Description: "Reclaimed pine, whitewashed", AvailableSizes: sizes[1:]},
	} {
		if _, err := frames.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, store docstore.Store) error {
	products := catalog.NewProducts(store)
	for _, in := range []catalog.ProductInput{
		{Name: "Canvas Print", Description: "Giclée print on stretched canvas", Price: 34.99, Category: "Modern",
			Sizes: []models.ProductSize{{Dimensions: "12x16 in", Price: 34.99}, {Dimensions: "18x24 in", Price: 54.99}}},
		{Name: "Framed Poster", Description: "Matte poster behind acrylic glazing", Price: 24.99, Category: "Classic",
			Sizes: []models.ProductSize{{Dimensions: "A3", Price: 24.99}, {Dimensions: "A2", Price: 39.99}}},
		{Name: "Float Mount Photo", Description: "Photo float-mounted on foam core", Price: 44.99, Category: "Gallery",
			Sizes: []models.ProductSize{{Dimensions: "10x10 in", Price: 44.99}}},
	} {
		if _, err := products.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
