package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	adapterrepo "github.com/mindvault/mindvault/internal/adapter/repository"
	"github.com/mindvault/mindvault/internal/excel"
	"github.com/mindvault/mindvault/internal/infrastructure/config"
	infraDB "github.com/mindvault/mindvault/internal/infrastructure/database"
)

// importCmd loads concepts, questions and resources from an xlsx workbook.
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import concepts, questions and resources from an xlsx workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, cleanup, err := infraDB.Connect(cfg)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer cleanup()

		importer := excel.NewImporter(
			adapterrepo.NewConceptRepository(db),
			adapterrepo.NewQuestionRepository(db),
			adapterrepo.NewResourceRepository(db),
		)
		result, err := importer.ImportFile(cmd.Context(), userID, args[0])
		if err != nil {
			return fmt.Errorf("import workbook: %w", err)
		}

		fmt.Printf("imported %d concepts, %d questions, %d resources\n",
			result.Concepts, result.Questions, result.Resources)
		for _, e := range result.Errors {
			fmt.Printf("warning: %s\n", e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().Int64("user", 1000, "user id to import records for")
}
