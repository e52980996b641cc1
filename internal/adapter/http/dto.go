package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/mindvault/mindvault/internal/entity"
)

type answeredQuestionRequest struct {
	QuestionID int64  `json:"question_id"`
	Difficulty string `json:"difficulty"`
	Correct    bool   `json:"correct"`
}

type completeQuizRequest struct {
	Answers         []answeredQuestionRequest `json:"answers"`
	SelfRating      int32                     `json:"self_rating"`
	DurationSeconds int64                     `json:"duration_seconds"`
}

func (r completeQuizRequest) toEntity() *entity.QuizAttempt {
	return &entity.QuizAttempt{
		Answers: lo.Map(r.Answers, func(a answeredQuestionRequest, _ int) entity.AnsweredQuestion {
			return entity.AnsweredQuestion{
				QuestionID: a.QuestionID,
				Difficulty: entity.Difficulty(a.Difficulty),
				Correct:    a.Correct,
			}
		}),
		SelfRating: r.SelfRating,
		Duration:   time.Duration(r.DurationSeconds) * time.Second,
	}
}

type progressResponse struct {
	ConceptID     int64     `json:"concept_id"`
	Comprehension int32     `json:"comprehension"`
	Practice      int32     `json:"practice"`
	EaseFactor    float64   `json:"ease_factor"`
	IntervalDays  int32     `json:"interval_days"`
	ReviewCount   int32     `json:"review_count"`
	LastReviewAt  time.Time `json:"last_review_at"`
	NextReviewAt  time.Time `json:"next_review_at"`
	TotalStudySec int64     `json:"total_study_seconds"`
	Mastered      bool      `json:"mastered"`
}

func toProgressResponse(p *entity.LearningProgress) progressResponse {
	return progressResponse{
		ConceptID:     p.ConceptID,
		Comprehension: p.Comprehension,
		Practice:      p.Practice,
		EaseFactor:    p.EaseFactor,
		IntervalDays:  p.IntervalDays,
		ReviewCount:   p.ReviewCount,
		LastReviewAt:  p.LastReviewAt,
		NextReviewAt:  p.NextReviewAt,
		TotalStudySec: p.TotalStudySec,
		Mastered:      p.Mastered(),
	}
}

type questionResponse struct {
	ID         int64    `json:"id"`
	Difficulty string   `json:"difficulty"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
}

func toQuestionResponse(q entity.Question) questionResponse {
	return questionResponse{
		ID:         q.ID,
		Difficulty: string(q.Difficulty),
		Prompt:     q.Prompt,
		Options:    q.Options,
	}
}

type scoredResourceResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	URL             string  `json:"url"`
	Quality         string  `json:"quality"`
	DurationMinutes int32   `json:"duration_minutes"`
	Relevance       float64 `json:"relevance"`
}

func toScoredResourceResponse(s entity.ScoredResource) scoredResourceResponse {
	return scoredResourceResponse{
		ID:              s.Resource.ID,
		Title:           s.Resource.Title,
		URL:             s.Resource.URL,
		Quality:         string(s.Resource.Quality),
		DurationMinutes: s.Resource.DurationMinutes,
		Relevance:       s.Relevance,
	}
}

type profileRequest struct {
	Visual      int32 `json:"visual"`
	Auditory    int32 `json:"auditory"`
	Reading     int32 `json:"reading"`
	Kinesthetic int32 `json:"kinesthetic"`
}

type profileResponse struct {
	Visual      int32     `json:"visual"`
	Auditory    int32     `json:"auditory"`
	Reading     int32     `json:"reading"`
	Kinesthetic int32     `json:"kinesthetic"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProfileResponse(p *entity.LearningStyleProfile) profileResponse {
	return profileResponse{
		Visual:      p.Visual,
		Auditory:    p.Auditory,
		Reading:     p.Reading,
		Kinesthetic: p.Kinesthetic,
		UpdatedAt:   p.UpdatedAt,
	}
}
