package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	adapterrepo "github.com/mindvault/mindvault/internal/adapter/repository"
	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/infrastructure/config"
	infraDB "github.com/mindvault/mindvault/internal/infrastructure/database"
)

// dbInitCmd initializes the database schema, optionally seeding a concept
// for quick manual testing.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Initialize the database schema",
	Long:  "Create all tables and indexes. Note: go-sqlite3 requires CGO_ENABLED=1 builds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		seedConcept, _ := cmd.Flags().GetString("seed-concept")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, cleanup, err := infraDB.Connect(cfg)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer cleanup()

		if err := infraDB.Migrate(db, cfg.Database.Driver); err != nil {
			return fmt.Errorf("db migrate: %w", err)
		}
		fmt.Println("schema initialized")

		if seedConcept != "" {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			repo := adapterrepo.NewConceptRepository(db)
			existing, err := repo.FindByName(ctx, 1000, seedConcept)
			if err != nil {
				return fmt.Errorf("seed concept: %w", err)
			}
			if existing == nil {
				if _, err := repo.Create(ctx, &entity.Concept{UserID: 1000, Name: seedConcept}); err != nil {
					return fmt.Errorf("seed concept: %w", err)
				}
			}
			fmt.Printf("seeded concept: %s\n", seedConcept)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)

	dbInitCmd.Flags().String("seed-concept", "", "(dev) seed a concept before starting for quick testing")
}
