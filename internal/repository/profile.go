package repository

import (
	"context"

	"github.com/mindvault/mindvault/internal/entity"
)

// ProfileRepository abstracts the learning style profile store.
// GetByUser returns (nil, nil) when the user has no profile; a missing
// profile is not an error, the ranker falls back to a neutral match.
type ProfileRepository interface {
	GetByUser(ctx context.Context, userID int64) (*entity.LearningStyleProfile, error)
	Upsert(ctx context.Context, profile *entity.LearningStyleProfile) (*entity.LearningStyleProfile, error)
}
