package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/learning"
	"github.com/mindvault/mindvault/internal/repository"
)

// ReviewUsecase encapsulates the quiz-completion feedback loop: score the
// attempt, update the spaced-repetition state and persist it.
type ReviewUsecase interface {
	CompleteQuiz(ctx context.Context, userID, conceptID int64, attempt *entity.QuizAttempt) (*entity.LearningProgress, error)
	GetProgress(ctx context.Context, userID, conceptID int64) (*entity.LearningProgress, error)
	ListProgress(ctx context.Context, userID int64) ([]entity.LearningProgress, error)
	DueReviews(ctx context.Context, userID int64, limit int32) ([]entity.LearningProgress, error)
}

// NewReviewUsecase wires the repository and engine with default behaviour.
func NewReviewUsecase(repo repository.ProgressRepository, engine *learning.Engine) ReviewUsecase {
	return &reviewUsecase{
		repo:   repo,
		engine: engine,
		clock:  time.Now,
		locks:  map[progressKey]*sync.Mutex{},
	}
}

type progressKey struct {
	userID    int64
	conceptID int64
}

type reviewUsecase struct {
	repo   repository.ProgressRepository
	engine *learning.Engine
	clock  func() time.Time

	// The scheduler update is read-modify-write and not commutative, so
	// concurrent completions for the same (user, concept) pair must be
	// serialised.
	mu    sync.Mutex
	locks map[progressKey]*sync.Mutex
}

func (u *reviewUsecase) lockFor(userID, conceptID int64) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	key := progressKey{userID: userID, conceptID: conceptID}
	lock, ok := u.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		u.locks[key] = lock
	}
	return lock
}

func (u *reviewUsecase) CompleteQuiz(ctx context.Context, userID, conceptID int64, attempt *entity.QuizAttempt) (*entity.LearningProgress, error) {
	if attempt == nil {
		return nil, entity.ErrEmptyAttempt
	}
	if err := attempt.Validate(); err != nil {
		return nil, err
	}
	attempt.UserID = userID
	attempt.ConceptID = conceptID
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}

	lock := u.lockFor(userID, conceptID)
	lock.Lock()
	defer lock.Unlock()

	prev, err := u.repo.GetByUserAndConcept(ctx, userID, conceptID)
	if err != nil {
		return nil, err
	}

	updated, err := u.engine.Schedule(prev, attempt, u.clock())
	if err != nil {
		return nil, err
	}
	if prev != nil {
		updated.ID = prev.ID
		updated.CreatedAt = prev.CreatedAt
	}

	// Persistence failures are surfaced unchanged; the update is never
	// retried or rolled back here.
	return u.repo.Upsert(ctx, &updated)
}

func (u *reviewUsecase) GetProgress(ctx context.Context, userID, conceptID int64) (*entity.LearningProgress, error) {
	progress, err := u.repo.GetByUserAndConcept(ctx, userID, conceptID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, entity.ErrProgressNotFound
	}
	return progress, nil
}

func (u *reviewUsecase) ListProgress(ctx context.Context, userID int64) ([]entity.LearningProgress, error) {
	return u.repo.ListByUser(ctx, userID)
}

func (u *reviewUsecase) DueReviews(ctx context.Context, userID int64, limit int32) ([]entity.LearningProgress, error) {
	if limit <= 0 {
		limit = 20
	}
	return u.repo.ListDue(ctx, userID, u.clock(), limit)
}
