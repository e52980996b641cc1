package repository

import (
	"context"

	"github.com/mindvault/mindvault/internal/entity"
)

// QuestionRepository abstracts the external question source. Listings are
// ordered by insertion position so sessions stay reproducible.
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) (*entity.Question, error)
	ListByConcept(ctx context.Context, conceptID int64, difficulty entity.Difficulty, limit int32) ([]entity.Question, error)
}
