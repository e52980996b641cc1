package repository

import (
	"context"
	"time"

	"github.com/mindvault/mindvault/internal/entity"
)

// DueCount aggregates how many concepts a user has waiting for review.
type DueCount struct {
	UserID int64
	Count  int64
}

// ProgressRepository abstracts persistence for learning progress records to
// keep usecases storage agnostic. GetByUserAndConcept returns (nil, nil)
// when no record exists yet.
type ProgressRepository interface {
	GetByUserAndConcept(ctx context.Context, userID, conceptID int64) (*entity.LearningProgress, error)
	Upsert(ctx context.Context, progress *entity.LearningProgress) (*entity.LearningProgress, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.LearningProgress, error)
	ListDue(ctx context.Context, userID int64, due time.Time, limit int32) ([]entity.LearningProgress, error)
	DueCounts(ctx context.Context, due time.Time) ([]DueCount, error)
}
