package learning

import (
	"testing"

	"github.com/mindvault/mindvault/internal/entity"
)

func TestSelectDifficultyThresholds(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		comprehension int32
		want          entity.Difficulty
	}{
		{0, entity.DifficultyBasic},
		{49, entity.DifficultyBasic},
		{50, entity.DifficultyMedium},
		{79, entity.DifficultyMedium},
		{80, entity.DifficultyAdvanced},
		{100, entity.DifficultyAdvanced},
	}
	for _, tt := range tests {
		progress := &entity.LearningProgress{Comprehension: tt.comprehension, EaseFactor: 2.5, IntervalDays: 1}
		if got := engine.SelectDifficulty(progress); got != tt.want {
			t.Errorf("SelectDifficulty(comprehension=%d) = %s, want %s", tt.comprehension, got, tt.want)
		}
	}
}

func TestSelectDifficultyDefaultsToBasic(t *testing.T) {
	engine := newTestEngine(t)

	if got := engine.SelectDifficulty(nil); got != entity.DifficultyBasic {
		t.Errorf("SelectDifficulty(nil) = %s, want basic", got)
	}
}

func TestFilterQuestionsKeepsInsertionOrder(t *testing.T) {
	questions := []entity.Question{
		{ID: 1, Difficulty: entity.DifficultyBasic},
		{ID: 2, Difficulty: entity.DifficultyMedium},
		{ID: 3, Difficulty: entity.DifficultyBasic},
		{ID: 4, Difficulty: entity.DifficultyAdvanced},
		{ID: 5, Difficulty: entity.DifficultyBasic},
	}

	got := FilterQuestions(questions, entity.DifficultyBasic)
	wantIDs := []int64{1, 3, 5}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d questions, got %d", len(wantIDs), len(got))
	}
	for i, q := range got {
		if q.ID != wantIDs[i] {
			t.Errorf("position %d: got question %d, want %d", i, q.ID, wantIDs[i])
		}
	}
}
