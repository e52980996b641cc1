package repository

import (
	"context"

	"github.com/mindvault/mindvault/internal/entity"
)

// ResourceRepository abstracts the external resource store. Listings keep
// discovery order (insertion order); the ranker's stable sort relies on it.
type ResourceRepository interface {
	Create(ctx context.Context, resource *entity.Resource) (*entity.Resource, error)
	ListByConcept(ctx context.Context, conceptID int64) ([]entity.Resource, error)
}
