package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	adapterrepo "github.com/mindvault/mindvault/internal/adapter/repository"
	"github.com/mindvault/mindvault/internal/excel"
	"github.com/mindvault/mindvault/internal/infrastructure/config"
	infraDB "github.com/mindvault/mindvault/internal/infrastructure/database"
)

// exportCmd writes a progress snapshot to an xlsx workbook.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export learning progress to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = fmt.Sprintf("mindvault-progress-%s.xlsx", time.Now().Format("20060102-150405"))
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, cleanup, err := infraDB.Connect(cfg)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer cleanup()

		exporter := excel.NewExporter(
			adapterrepo.NewProgressRepository(db),
			adapterrepo.NewConceptRepository(db),
		)
		count, err := exporter.ExportProgress(cmd.Context(), userID, output)
		if err != nil {
			return fmt.Errorf("export progress: %w", err)
		}

		fmt.Printf("exported %d progress records to %s\n", count, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Int64("user", 1000, "user id to export records for")
	exportCmd.Flags().String("output", "", "output file path (default mindvault-progress-<timestamp>.xlsx)")
}
