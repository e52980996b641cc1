package usecase

import (
	"context"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/learning"
	"github.com/mindvault/mindvault/internal/repository"
)

// QuestionUsecase picks the next quiz questions for a concept at the
// difficulty tier matching the user's current comprehension.
type QuestionUsecase interface {
	NextQuestions(ctx context.Context, userID, conceptID int64, limit int32) ([]entity.Question, entity.Difficulty, error)
	AddQuestion(ctx context.Context, question *entity.Question) (*entity.Question, error)
}

// NewQuestionUsecase wires the repositories and engine with default behaviour.
func NewQuestionUsecase(questions repository.QuestionRepository, progress repository.ProgressRepository, engine *learning.Engine) QuestionUsecase {
	return &questionUsecase{questions: questions, progress: progress, engine: engine}
}

type questionUsecase struct {
	questions repository.QuestionRepository
	progress  repository.ProgressRepository
	engine    *learning.Engine
}

func (u *questionUsecase) NextQuestions(ctx context.Context, userID, conceptID int64, limit int32) ([]entity.Question, entity.Difficulty, error) {
	if limit <= 0 {
		limit = 10
	}

	// A concept with no progress yet defaults to the basic tier.
	progress, err := u.progress.GetByUserAndConcept(ctx, userID, conceptID)
	if err != nil {
		return nil, "", err
	}
	difficulty := u.engine.SelectDifficulty(progress)

	questions, err := u.questions.ListByConcept(ctx, conceptID, difficulty, limit)
	if err != nil {
		return nil, "", err
	}
	return questions, difficulty, nil
}

func (u *questionUsecase) AddQuestion(ctx context.Context, question *entity.Question) (*entity.Question, error) {
	if question == nil || !question.Difficulty.Valid() {
		return nil, entity.ErrInvalidDifficulty
	}
	return u.questions.Create(ctx, question)
}
