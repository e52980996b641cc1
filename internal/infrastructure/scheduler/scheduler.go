// Package scheduler runs periodic maintenance jobs for the application.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/mindvault/mindvault/internal/repository"
)

// Scheduler manages scheduled tasks for the application.
type Scheduler struct {
	scheduler *gocron.Scheduler
	progress  repository.ProgressRepository
	logger    *logrus.Logger
}

// New creates a new scheduler instance.
func New(progress repository.ProgressRepository, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		progress:  progress,
		logger:    logger,
	}
}

// Start begins running all scheduled tasks in the background.
func (s *Scheduler) Start() {
	_, _ = s.scheduler.Every(1).Hour().Do(s.dueReviewDigest)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// dueReviewDigest logs how many concepts each user has waiting for review.
// This is the hook point for reminder delivery (mail, push) later on.
func (s *Scheduler) dueReviewDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := s.progress.DueCounts(ctx, time.Now())
	if err != nil {
		s.logger.Errorf("due review digest failed: %v", err)
		return
	}
	for _, c := range counts {
		s.logger.WithFields(logrus.Fields{
			"user_id": c.UserID,
			"due":     c.Count,
		}).Info("concepts due for review")
	}
}
