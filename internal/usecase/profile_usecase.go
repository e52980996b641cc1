package usecase

import (
	"context"
	"time"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/repository"
)

// ProfileUsecase manages the user's learning style preference weights.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.LearningStyleProfile, error)
	UpdateProfile(ctx context.Context, userID int64, profile *entity.LearningStyleProfile) (*entity.LearningStyleProfile, error)
}

// NewProfileUsecase wires the repository with default behaviour.
func NewProfileUsecase(repo repository.ProfileRepository) ProfileUsecase {
	return &profileUsecase{repo: repo, clock: time.Now}
}

type profileUsecase struct {
	repo  repository.ProfileRepository
	clock func() time.Time
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID int64) (*entity.LearningStyleProfile, error) {
	profile, err := u.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, entity.ErrProfileNotFound
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID int64, profile *entity.LearningStyleProfile) (*entity.LearningStyleProfile, error) {
	if profile == nil {
		return nil, entity.ErrInvalidStyleProfile
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	copy := *profile
	copy.UserID = userID
	copy.UpdatedAt = u.clock()
	return u.repo.Upsert(ctx, &copy)
}
