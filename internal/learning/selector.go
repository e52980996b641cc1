package learning

import (
	"github.com/samber/lo"

	"github.com/mindvault/mindvault/internal/entity"
)

// SelectDifficulty chooses the question tier to present next for a concept.
// Below the medium threshold the user gets basic questions, below the
// advanced threshold medium ones, above it advanced. A nil progress record
// (concept never quizzed) defaults to basic.
func (e *Engine) SelectDifficulty(progress *entity.LearningProgress) entity.Difficulty {
	if progress == nil {
		return entity.DifficultyBasic
	}
	switch {
	case progress.Comprehension < e.cfg.MediumThreshold:
		return entity.DifficultyBasic
	case progress.Comprehension < e.cfg.AdvancedThreshold:
		return entity.DifficultyMedium
	default:
		return entity.DifficultyAdvanced
	}
}

// FilterQuestions keeps the questions of the given tier, preserving input
// order so repeated sessions see the same sequence.
func FilterQuestions(questions []entity.Question, difficulty entity.Difficulty) []entity.Question {
	return lo.Filter(questions, func(q entity.Question, _ int) bool {
		return q.Difficulty == difficulty
	})
}
