package learning

import (
	"math"
	"time"

	"github.com/mindvault/mindvault/internal/entity"
)

// Schedule recomputes a concept's learning progress from a finished quiz
// attempt, applying the SM-2 family policy:
//
//   - quality < 3: the review failed, the interval resets to 1 day and the
//     ease factor is left untouched.
//   - quality >= 3: the ease factor moves by the SM-2 delta (floored at the
//     configured minimum) and the interval grows to round(interval * ease).
//
// prev is the persisted record, or nil when the concept has never been
// reviewed; in that case a fresh record (interval 1, ease 2.5) is
// initialised before the update. The input record is never mutated; the
// updated copy is returned. Malformed prior records are rejected with
// entity.ErrInvalidProgress rather than clamped.
//
// The update is a read-modify-write and is not commutative; callers must
// serialise invocations per (user, concept) pair.
func (e *Engine) Schedule(prev *entity.LearningProgress, attempt *entity.QuizAttempt, now time.Time) (entity.LearningProgress, error) {
	quality, err := e.ScoreAttempt(attempt)
	if err != nil {
		return entity.LearningProgress{}, err
	}

	var p entity.LearningProgress
	if prev == nil {
		p = entity.LearningProgress{
			UserID:       attempt.UserID,
			ConceptID:    attempt.ConceptID,
			EaseFactor:   e.cfg.InitialEaseFactor,
			IntervalDays: 1,
		}
	} else {
		if err := prev.Validate(); err != nil {
			return entity.LearningProgress{}, err
		}
		p = *prev
	}

	if quality < 3 {
		p.IntervalDays = 1
	} else {
		q := float64(quality)
		ease := p.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
		if ease < e.cfg.MinEaseFactor {
			ease = e.cfg.MinEaseFactor
		}
		p.EaseFactor = ease

		interval := int32(math.Round(float64(p.IntervalDays) * ease))
		if interval < 1 {
			interval = 1
		}
		p.IntervalDays = interval
	}

	p.ReviewCount++
	p.LastReviewAt = now
	p.NextReviewAt = now.AddDate(0, 0, int(p.IntervalDays))

	sessionScore := float64(attempt.PercentScore())
	blended := float64(p.Comprehension)*e.cfg.ComprehensionRetention + sessionScore*e.cfg.ComprehensionGain
	p.Comprehension = clampInt32(int32(math.Round(blended)), 0, 100)
	p.Practice = clampInt32(p.Practice+e.cfg.PracticeIncrement, 0, 100)
	p.TotalStudySec += int64(attempt.Duration / time.Second)
	p.Normalize(now)

	return p, nil
}
