package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	adapterhttp "github.com/mindvault/mindvault/internal/adapter/http"
	adapterrepo "github.com/mindvault/mindvault/internal/adapter/repository"
	"github.com/mindvault/mindvault/internal/infrastructure/config"
	"github.com/mindvault/mindvault/internal/learning"
	"github.com/mindvault/mindvault/internal/usecase"
)

// Server represents the application server
type Server struct {
	config     *config.Config
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer creates a new server instance wired to the given database.
func NewServer(cfg *config.Config, logger *logrus.Logger, db *sqlx.DB) (*Server, error) {
	engine, err := learning.NewEngine(cfg.EngineConfig())
	if err != nil {
		return nil, fmt.Errorf("build learning engine: %w", err)
	}

	progressRepo := adapterrepo.NewProgressRepository(db)
	questionRepo := adapterrepo.NewQuestionRepository(db)
	resourceRepo := adapterrepo.NewResourceRepository(db)
	profileRepo := adapterrepo.NewProfileRepository(db)

	handlers := adapterhttp.Handlers{
		Review:   usecase.NewReviewUsecase(progressRepo, engine),
		Question: usecase.NewQuestionUsecase(questionRepo, progressRepo, engine),
		Resource: usecase.NewResourceUsecase(resourceRepo, profileRepo, engine),
		Profile:  usecase.NewProfileUsecase(profileRepo),
	}
	router := adapterhttp.NewRouter(logger, handlers)

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		},
		logger: logger,
	}, nil
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP server: %v", err)
		return err
	}
	s.logger.Info("Server shutdown complete")
	return nil
}
