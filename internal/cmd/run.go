package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framecraft/admin/internal/config"
	"github.com/framecraft/admin/internal/database"
	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/server"
	"github.com/framecraft/admin/internal/session"
	"github.com/framecraft/admin/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Framecraft Admin server",
	Long: `Start the Framecraft Admin server which provides:
- REST API for the admin panel (orders, catalog, users)
- Storefront checkout endpoint
- Image upload to object storage

With no db.dsn configured the server runs against an in-memory
document store, useful for local development.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Framecraft Admin starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var db *database.DB
	var store docstore.Store
	if cfg.DB.DSN != "" {
		fmt.Println("🔌 Connecting to database...")
		db, err = database.NewConnection(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		store = docstore.NewSQLStore(db)
		fmt.Println("✅ Database connected successfully")
	} else {
		fmt.Println("⚠️  No db.dsn configured, using in-memory document store")
		store = docstore.NewMemoryStore()
	}

	var uploader storage.Uploader
	if cfg.Storage.CloudinaryURL != "" {
		uploader, err = storage.NewCloudinaryUploader(cfg.Storage.CloudinaryURL, cfg.Storage.Folder)
		if err != nil {
			return fmt.Errorf("failed to init object storage: %w", err)
		}
	} else {
		fmt.Println("⚠️  No storage.cloudinary_url configured, image uploads disabled")
	}

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(server.Deps{
		Gate:     session.NewGate(cfg.Admin.Email, cfg.Admin.Password),
		Store:    store,
		Uploader: uploader,
		DB:       db,
	})

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
