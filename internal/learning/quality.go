package learning

import (
	"math"

	"github.com/mindvault/mindvault/internal/entity"
)

// ScoreAttempt turns a finished quiz attempt into a quality value in [1,5].
// Accuracy and the user's self rating are blended with the configured
// weights (0.7/0.3 by default). Pure function, no side effects.
func (e *Engine) ScoreAttempt(attempt *entity.QuizAttempt) (int32, error) {
	if attempt == nil {
		return 0, entity.ErrEmptyAttempt
	}
	if err := attempt.Validate(); err != nil {
		return 0, err
	}

	correctRatio := float64(attempt.CorrectCount()) / float64(len(attempt.Answers))
	raw := correctRatio*5*e.cfg.AccuracyWeight + float64(attempt.SelfRating)*e.cfg.SelfRatingWeight
	return clampInt32(int32(math.Round(raw)), 1, 5), nil
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
