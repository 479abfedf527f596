package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framecraft/admin/internal/config"
	"github.com/framecraft/admin/internal/database"
	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/storage"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Report catalog records with a missing image",
	Long: `Scans the products and frames collections for documents whose image
reference is empty. These are usually left behind when the two-step
create-then-upload sequence was interrupted. The sweep only reports;
fixing a record (re-upload or delete) is up to the admin.`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DB.DSN == "" {
		return fmt.Errorf("db.dsn is not configured; sweep needs a real database")
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("🔍 Sweeping catalog for missing images...")
	findings, err := storage.SweepMissingImages(context.Background(), docstore.NewSQLStore(db))
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	if len(findings) == 0 {
		fmt.Println("✅ No records with missing images")
		return nil
	}

	fmt.Printf("⚠️  %d record(s) with missing images:\n", len(findings))
	for _, f := range findings {
		fmt.Printf("   %s/%s  %q\n", f.Collection, f.ID, f.Name)
	}
	return nil
}
