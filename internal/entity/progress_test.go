package entity

import (
	"errors"
	"testing"
	"time"
)

func validProgress() LearningProgress {
	return LearningProgress{
		UserID:        1,
		ConceptID:     1,
		Comprehension: 50,
		Practice:      50,
		EaseFactor:    2.5,
		IntervalDays:  3,
		ReviewCount:   2,
	}
}

func TestLearningProgressValidate(t *testing.T) {
	p := validProgress()
	if err := p.Validate(); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*LearningProgress)
	}{
		{"comprehension above 100", func(p *LearningProgress) { p.Comprehension = 101 }},
		{"negative practice", func(p *LearningProgress) { p.Practice = -1 }},
		{"ease below floor", func(p *LearningProgress) { p.EaseFactor = 1.29 }},
		{"zero interval", func(p *LearningProgress) { p.IntervalDays = 0 }},
		{"negative review count", func(p *LearningProgress) { p.ReviewCount = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProgress()
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidProgress) {
				t.Errorf("got %v, want ErrInvalidProgress", err)
			}
		})
	}
}

func TestLearningProgressDue(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	p := validProgress()
	p.NextReviewAt = now.Add(-time.Hour)
	if !p.Due(now) {
		t.Error("overdue record not reported as due")
	}
	p.NextReviewAt = now
	if !p.Due(now) {
		t.Error("record due exactly now not reported as due")
	}
	p.NextReviewAt = now.Add(time.Hour)
	if p.Due(now) {
		t.Error("future record reported as due")
	}
}

func TestLearningProgressMastered(t *testing.T) {
	p := validProgress()
	p.ReviewCount = 5
	p.Comprehension = 80
	p.IntervalDays = 30
	if !p.Mastered() {
		t.Error("record at all thresholds not reported as mastered")
	}

	for _, mutate := range []func(*LearningProgress){
		func(p *LearningProgress) { p.ReviewCount = 4 },
		func(p *LearningProgress) { p.Comprehension = 79 },
		func(p *LearningProgress) { p.IntervalDays = 29 },
	} {
		q := p
		mutate(&q)
		if q.Mastered() {
			t.Errorf("record below a threshold reported as mastered: %+v", q)
		}
	}
}

func TestLearningProgressNormalize(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	p := validProgress()
	p.Normalize(now)
	if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
		t.Errorf("fresh record timestamps not set: created %v updated %v", p.CreatedAt, p.UpdatedAt)
	}

	later := now.Add(time.Hour)
	p.Normalize(later)
	if !p.CreatedAt.Equal(now) {
		t.Errorf("creation time overwritten: %v", p.CreatedAt)
	}
	if !p.UpdatedAt.Equal(later) {
		t.Errorf("update time not advanced: %v", p.UpdatedAt)
	}
}
