package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framecraft/admin/internal/config"
	"github.com/framecraft/admin/internal/database"
	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/users"
)

var grantCmd = &cobra.Command{
	Use:   "grant-admin <user-id>",
	Short: "Grant the admin role to a user",
	Long: `Sets role=admin on the given user document. Intended for
bootstrapping the first admin from the machine that owns the database;
the HTTP route performs the same operation behind the admin claim.`,
	Args: cobra.ExactArgs(1),
	RunE: grantAdmin,
}

func init() {
	rootCmd.AddCommand(grantCmd)
}

func grantAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DB.DSN == "" {
		return fmt.Errorf("db.dsn is not configured; grant-admin needs a real database")
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	svc := users.NewService(docstore.NewSQLStore(db))

	// The operator running this command owns the process, so the call
	// carries the admin claim.
	user, err := svc.GrantAdmin(context.Background(), users.Claims{Email: cfg.Admin.Email, Admin: true}, args[0])
	if err != nil {
		return fmt.Errorf("failed to grant admin role: %w", err)
	}

	fmt.Printf("✅ Granted admin role to %s (%s)\n", user.Email, user.ID)
	return nil
}
