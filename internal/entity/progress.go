package entity

import (
	"fmt"
	"time"
)

// LearningProgress tracks how well a user has learned a single concept.
// One record exists per (user, concept) pair; it is created on the first
// completed quiz and mutated only by the review scheduler.
type LearningProgress struct {
	ID            int64
	UserID        int64
	ConceptID     int64
	Comprehension int32   // 0-100, slow-moving estimate of understanding
	Practice      int32   // 0-100, repetition/exposure estimate
	EaseFactor    float64 // >= 1.3, governs interval growth
	IntervalDays  int32   // >= 1, days until the next scheduled review
	ReviewCount   int32
	LastReviewAt  time.Time
	NextReviewAt  time.Time
	TotalStudySec int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate rejects records that violate the persistence invariants.
// Inputs are never silently clamped; only scheduler outputs are.
func (p *LearningProgress) Validate() error {
	if p.Comprehension < 0 || p.Comprehension > 100 {
		return fmt.Errorf("%w: comprehension %d", ErrInvalidProgress, p.Comprehension)
	}
	if p.Practice < 0 || p.Practice > 100 {
		return fmt.Errorf("%w: practice %d", ErrInvalidProgress, p.Practice)
	}
	if p.EaseFactor < 1.3 {
		return fmt.Errorf("%w: ease factor %.2f", ErrInvalidProgress, p.EaseFactor)
	}
	if p.IntervalDays < 1 {
		return fmt.Errorf("%w: interval %d days", ErrInvalidProgress, p.IntervalDays)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("%w: review count %d", ErrInvalidProgress, p.ReviewCount)
	}
	return nil
}

// Due reports whether the concept is due for review at the given time.
func (p *LearningProgress) Due(now time.Time) bool {
	return !p.NextReviewAt.After(now)
}

// Mastered reports whether the concept counts as mastered: enough successful
// reviews, high comprehension and a long-ish interval.
func (p *LearningProgress) Mastered() bool {
	return p.ReviewCount >= 5 && p.Comprehension >= 80 && p.IntervalDays >= 30
}

// Normalize ensures defaults & constraints before persistence.
func (p *LearningProgress) Normalize(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
