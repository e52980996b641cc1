package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/learning"
	"github.com/mindvault/mindvault/internal/repository"
)

type pairKey struct {
	userID    int64
	conceptID int64
}

type fakeProgressRepo struct {
	mu        sync.RWMutex
	seq       int64
	items     map[pairKey]*entity.LearningProgress
	upsertErr error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{items: make(map[pairKey]*entity.LearningProgress)}
}

func (r *fakeProgressRepo) GetByUserAndConcept(ctx context.Context, userID, conceptID int64) (*entity.LearningProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[pairKey{userID, conceptID}]
	if !ok {
		return nil, nil
	}
	copy := *item
	return &copy, nil
}

func (r *fakeProgressRepo) Upsert(ctx context.Context, p *entity.LearningProgress) (*entity.LearningProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *p
	if copy.ID == 0 {
		r.seq++
		copy.ID = r.seq
	}
	r.items[pairKey{p.UserID, p.ConceptID}] = &copy
	result := copy
	return &result, nil
}

func (r *fakeProgressRepo) ListByUser(ctx context.Context, userID int64) ([]entity.LearningProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.LearningProgress
	for key, item := range r.items {
		if key.userID == userID {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeProgressRepo) ListDue(ctx context.Context, userID int64, due time.Time, limit int32) ([]entity.LearningProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.LearningProgress
	for key, item := range r.items {
		if key.userID == userID && !item.NextReviewAt.After(due) {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].NextReviewAt.Before(result[j].NextReviewAt) })
	if int32(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeProgressRepo) DueCounts(ctx context.Context, due time.Time) ([]repository.DueCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := map[int64]int64{}
	for key, item := range r.items {
		if !item.NextReviewAt.After(due) {
			counts[key.userID]++
		}
	}
	var result []repository.DueCount
	for userID, count := range counts {
		result = append(result, repository.DueCount{UserID: userID, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}

func testEngine(t *testing.T) *learning.Engine {
	t.Helper()
	engine, err := learning.NewEngine(learning.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func testAttempt(correct, total int, selfRating int32) *entity.QuizAttempt {
	answers := make([]entity.AnsweredQuestion, total)
	for i := range answers {
		answers[i] = entity.AnsweredQuestion{QuestionID: int64(i + 1), Correct: i < correct}
	}
	return &entity.QuizAttempt{Answers: answers, SelfRating: selfRating, Duration: time.Minute}
}

func TestCompleteQuizCreatesProgress(t *testing.T) {
	repo := newFakeProgressRepo()
	uc := NewReviewUsecase(repo, testEngine(t))
	impl := uc.(*reviewUsecase)
	fixed := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	impl.clock = func() time.Time { return fixed }

	got, err := uc.CompleteQuiz(context.Background(), 42, 7, testAttempt(8, 10, 4))
	if err != nil {
		t.Fatalf("CompleteQuiz returned error: %v", err)
	}
	if got.ID == 0 {
		t.Errorf("expected ID to be set, got %d", got.ID)
	}
	if got.IntervalDays != 3 {
		t.Errorf("expected interval 3 after first strong review, got %d", got.IntervalDays)
	}
	if got.ReviewCount != 1 {
		t.Errorf("expected review count 1, got %d", got.ReviewCount)
	}
	if got.Comprehension != 24 {
		t.Errorf("expected comprehension 24, got %d", got.Comprehension)
	}
	if !got.NextReviewAt.Equal(fixed.AddDate(0, 0, 3)) {
		t.Errorf("expected next review three days out, got %v", got.NextReviewAt)
	}
}

func TestCompleteQuizUpdatesExistingProgress(t *testing.T) {
	repo := newFakeProgressRepo()
	uc := NewReviewUsecase(repo, testEngine(t))
	impl := uc.(*reviewUsecase)
	first := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	impl.clock = func() time.Time { return first }

	created, err := uc.CompleteQuiz(context.Background(), 1, 5, testAttempt(8, 10, 4))
	if err != nil {
		t.Fatalf("first CompleteQuiz failed: %v", err)
	}

	second := first.AddDate(0, 0, 3)
	impl.clock = func() time.Time { return second }
	updated, err := uc.CompleteQuiz(context.Background(), 1, 5, testAttempt(10, 10, 5))
	if err != nil {
		t.Fatalf("second CompleteQuiz failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("expected record to keep its ID, got %d and %d", created.ID, updated.ID)
	}
	if updated.ReviewCount != 2 {
		t.Errorf("expected review count 2, got %d", updated.ReviewCount)
	}
	if updated.IntervalDays <= created.IntervalDays {
		t.Errorf("expected interval to grow, got %d then %d", created.IntervalDays, updated.IntervalDays)
	}
	if updated.TotalStudySec != 120 {
		t.Errorf("expected accumulated study time 120s, got %d", updated.TotalStudySec)
	}
}

func TestCompleteQuizRejectsInvalidAttempts(t *testing.T) {
	repo := newFakeProgressRepo()
	uc := NewReviewUsecase(repo, testEngine(t))

	if _, err := uc.CompleteQuiz(context.Background(), 1, 1, nil); !errors.Is(err, entity.ErrEmptyAttempt) {
		t.Errorf("nil attempt: got %v, want ErrEmptyAttempt", err)
	}
	if _, err := uc.CompleteQuiz(context.Background(), 1, 1, &entity.QuizAttempt{SelfRating: 3}); !errors.Is(err, entity.ErrEmptyAttempt) {
		t.Errorf("empty attempt: got %v, want ErrEmptyAttempt", err)
	}
	if _, err := uc.CompleteQuiz(context.Background(), 1, 1, testAttempt(1, 2, 9)); !errors.Is(err, entity.ErrInvalidSelfRating) {
		t.Errorf("bad rating: got %v, want ErrInvalidSelfRating", err)
	}
	if len(repo.items) != 0 {
		t.Errorf("expected no records persisted, got %d", len(repo.items))
	}
}

func TestCompleteQuizSurfacesPersistenceError(t *testing.T) {
	repo := newFakeProgressRepo()
	wantErr := errors.New("connection reset")
	repo.upsertErr = wantErr
	uc := NewReviewUsecase(repo, testEngine(t))

	_, err := uc.CompleteQuiz(context.Background(), 1, 1, testAttempt(5, 10, 3))
	if !errors.Is(err, wantErr) {
		t.Errorf("expected persistence error surfaced unchanged, got %v", err)
	}
}

func TestCompleteQuizSerialisesPerConcept(t *testing.T) {
	repo := newFakeProgressRepo()
	uc := NewReviewUsecase(repo, testEngine(t))

	const sessions = 20
	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.CompleteQuiz(context.Background(), 3, 9, testAttempt(7, 10, 3)); err != nil {
				t.Errorf("CompleteQuiz failed: %v", err)
			}
		}()
	}
	wg.Wait()

	final, err := uc.GetProgress(context.Background(), 3, 9)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if final.ReviewCount != sessions {
		t.Errorf("expected %d reviews recorded, got %d (lost update)", sessions, final.ReviewCount)
	}
}

func TestGetProgressNotFound(t *testing.T) {
	uc := NewReviewUsecase(newFakeProgressRepo(), testEngine(t))

	if _, err := uc.GetProgress(context.Background(), 1, 99); !errors.Is(err, entity.ErrProgressNotFound) {
		t.Errorf("got %v, want ErrProgressNotFound", err)
	}
}

func TestDueReviewsOrdersByNextReview(t *testing.T) {
	repo := newFakeProgressRepo()
	uc := NewReviewUsecase(repo, testEngine(t))
	impl := uc.(*reviewUsecase)
	now := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	impl.clock = func() time.Time { return now }

	seed := func(conceptID int64, next time.Time) {
		_, err := repo.Upsert(context.Background(), &entity.LearningProgress{
			UserID: 4, ConceptID: conceptID, EaseFactor: 2.5, IntervalDays: 1, NextReviewAt: next,
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	seed(1, now.AddDate(0, 0, -1))
	seed(2, now.AddDate(0, 0, -3))
	seed(3, now.AddDate(0, 0, 2)) // not due

	due, err := uc.DueReviews(context.Background(), 4, 10)
	if err != nil {
		t.Fatalf("DueReviews failed: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due reviews, got %d", len(due))
	}
	if due[0].ConceptID != 2 || due[1].ConceptID != 1 {
		t.Errorf("expected most overdue first, got concepts %d, %d", due[0].ConceptID, due[1].ConceptID)
	}
}
