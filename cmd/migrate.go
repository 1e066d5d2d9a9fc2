package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"budgetbook/internal/database"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "Run the embedded schema migrations",
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("migrate: failed to open DB: %v", err)
	}
	defer db.Close()

	if migrateRollback {
		if err := database.Rollback(ctx, db.DB); err != nil {
			log.Fatalf("migrate rollback: %v", err)
		}
		return nil
	}

	if err := database.EnsureSchema(ctx, db.DB); err != nil {
		log.Fatalf("migrate up: %v", err)
	}

	return nil
}
