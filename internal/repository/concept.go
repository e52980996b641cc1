package repository

import (
	"context"

	"github.com/mindvault/mindvault/internal/entity"
)

// ConceptRepository abstracts persistence for concepts. Concept extraction
// happens upstream; this only stores the referential records.
type ConceptRepository interface {
	Create(ctx context.Context, concept *entity.Concept) (*entity.Concept, error)
	GetByID(ctx context.Context, userID, id int64) (*entity.Concept, error)
	FindByName(ctx context.Context, userID int64, name string) (*entity.Concept, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Concept, error)
}
