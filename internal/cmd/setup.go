package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framecraft/admin/internal/config"
	"github.com/framecraft/admin/internal/database"
)

var dropFirst bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the document collection tables",
	Long: `Creates one document table per collection (users, orders, products,
frames, categories) in the configured MySQL/TiDB database.`,
	RunE: setupSchema,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing collection tables before creating")
}

func setupSchema(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up database schema...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DB.DSN == "" {
		return fmt.Errorf("db.dsn is not configured; setup needs a real database")
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing collection tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating collection tables...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	fmt.Println("✅ Schema setup complete!")
	return nil
}
