package entity

import (
	"math"
	"time"
)

// Difficulty is the tier a quiz question belongs to.
type Difficulty string

const (
	DifficultyBasic    Difficulty = "basic"
	DifficultyMedium   Difficulty = "medium"
	DifficultyAdvanced Difficulty = "advanced"
)

// Valid reports whether d is a known difficulty tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBasic, DifficultyMedium, DifficultyAdvanced:
		return true
	}
	return false
}

// Question is a quiz question served for a concept. Position preserves
// insertion order so sessions stay reproducible.
type Question struct {
	ID          int64
	ConceptID   int64
	Difficulty  Difficulty
	Prompt      string
	Options     []string
	AnswerIndex int32
	Position    int32
}

// AnsweredQuestion is one answered question inside a quiz attempt.
type AnsweredQuestion struct {
	QuestionID int64
	Difficulty Difficulty
	Correct    bool
}

// QuizAttempt is a finished quiz session. It is ephemeral: the scheduler
// consumes it once and only the resulting progress record is persisted.
type QuizAttempt struct {
	ID         string // session identifier, assigned when the attempt is recorded
	UserID     int64
	ConceptID  int64
	Answers    []AnsweredQuestion
	SelfRating int32 // 1-5, collected at session end
	Duration   time.Duration
	FinishedAt time.Time
}

// Validate rejects attempts the scorer must not be invoked on.
func (a *QuizAttempt) Validate() error {
	if len(a.Answers) == 0 {
		return ErrEmptyAttempt
	}
	if a.SelfRating < 1 || a.SelfRating > 5 {
		return ErrInvalidSelfRating
	}
	return nil
}

// CorrectCount returns the number of correctly answered questions.
func (a *QuizAttempt) CorrectCount() int {
	n := 0
	for _, ans := range a.Answers {
		if ans.Correct {
			n++
		}
	}
	return n
}

// PercentScore returns the session accuracy on a 0-100 scale.
// Callers must not invoke it on an empty attempt.
func (a *QuizAttempt) PercentScore() int32 {
	return int32(math.Round(float64(a.CorrectCount()) / float64(len(a.Answers)) * 100))
}
