package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adapterrepo "github.com/mindvault/mindvault/internal/adapter/repository"
	"github.com/mindvault/mindvault/internal/infrastructure/config"
	infraDB "github.com/mindvault/mindvault/internal/infrastructure/database"
	"github.com/mindvault/mindvault/internal/infrastructure/scheduler"
	"github.com/mindvault/mindvault/internal/infrastructure/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err := server.NewLogger(cfg)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}

		db, cleanup, err := infraDB.Connect(cfg)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer cleanup()

		if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
			if err := infraDB.Migrate(db, cfg.Database.Driver); err != nil {
				return fmt.Errorf("db migrate: %w", err)
			}
		}

		srv, err := server.NewServer(cfg, logger, db)
		if err != nil {
			return err
		}

		// Hourly due-review digest in the background.
		jobs := scheduler.New(adapterrepo.NewProgressRepository(db), logger)
		jobs.Start()
		defer jobs.Stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Infof("received signal: %s, shutting down", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("migrate", false, "run schema migrations before serving")
}
