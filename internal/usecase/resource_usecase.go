package usecase

import (
	"context"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/learning"
	"github.com/mindvault/mindvault/internal/repository"
)

// ResourceUsecase recommends external learning resources for a concept,
// ranked against the user's learning style profile.
type ResourceUsecase interface {
	Recommend(ctx context.Context, userID, conceptID int64) ([]entity.ScoredResource, error)
	AddResource(ctx context.Context, resource *entity.Resource) (*entity.Resource, error)
}

// NewResourceUsecase wires the repositories and engine with default behaviour.
func NewResourceUsecase(resources repository.ResourceRepository, profiles repository.ProfileRepository, engine *learning.Engine) ResourceUsecase {
	return &resourceUsecase{resources: resources, profiles: profiles, engine: engine}
}

type resourceUsecase struct {
	resources repository.ResourceRepository
	profiles  repository.ProfileRepository
	engine    *learning.Engine
}

func (u *resourceUsecase) Recommend(ctx context.Context, userID, conceptID int64) ([]entity.ScoredResource, error) {
	candidates, err := u.resources.ListByConcept(ctx, conceptID)
	if err != nil {
		return nil, err
	}

	// A missing profile is not an error; the ranker assumes a neutral
	// style match for every candidate.
	profile, err := u.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return u.engine.RankResources(candidates, profile), nil
}

func (u *resourceUsecase) AddResource(ctx context.Context, resource *entity.Resource) (*entity.Resource, error) {
	return u.resources.Create(ctx, resource)
}
