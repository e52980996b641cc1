package entity

import (
	"errors"
	"testing"
)

func TestQuizAttemptValidate(t *testing.T) {
	valid := &QuizAttempt{Answers: []AnsweredQuestion{{QuestionID: 1, Correct: true}}, SelfRating: 3}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid attempt rejected: %v", err)
	}

	empty := &QuizAttempt{SelfRating: 3}
	if err := empty.Validate(); !errors.Is(err, ErrEmptyAttempt) {
		t.Errorf("empty attempt: got %v, want ErrEmptyAttempt", err)
	}

	for _, rating := range []int32{0, 6} {
		bad := &QuizAttempt{Answers: []AnsweredQuestion{{QuestionID: 1}}, SelfRating: rating}
		if err := bad.Validate(); !errors.Is(err, ErrInvalidSelfRating) {
			t.Errorf("rating %d: got %v, want ErrInvalidSelfRating", rating, err)
		}
	}
}

func TestQuizAttemptPercentScore(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    int32
	}{
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{7, 10, 70},
		{10, 10, 100},
	}
	for _, tt := range tests {
		answers := make([]AnsweredQuestion, tt.total)
		for i := range answers {
			answers[i].Correct = i < tt.correct
		}
		a := &QuizAttempt{Answers: answers, SelfRating: 3}
		if got := a.PercentScore(); got != tt.want {
			t.Errorf("PercentScore(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestDifficultyValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyBasic, DifficultyMedium, DifficultyAdvanced} {
		if !d.Valid() {
			t.Errorf("%s unexpectedly invalid", d)
		}
	}
	for _, d := range []Difficulty{"", "expert", "Basic"} {
		if d.Valid() {
			t.Errorf("%q unexpectedly valid", d)
		}
	}
}
