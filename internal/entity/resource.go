package entity

import "time"

// ResourceQuality is the editorial quality tier of a learning resource.
type ResourceQuality string

const (
	QualityHigh   ResourceQuality = "high"
	QualityMedium ResourceQuality = "medium"
	QualityLow    ResourceQuality = "low"
)

// StyleFit holds per-modality suitability scores (0-100) describing how well
// a resource serves each learning mode.
type StyleFit struct {
	Visual      int32 `json:"visual"`
	Auditory    int32 `json:"auditory"`
	Reading     int32 `json:"reading"`
	Kinesthetic int32 `json:"kinesthetic"`
}

// Resource is static metadata for an external learning resource attached to
// a concept. Relevance is computed per request and never written back.
type Resource struct {
	ID              int64
	ConceptID       int64
	Title           string
	URL             string
	Quality         ResourceQuality
	Authority       int32   // 0-100
	Engagement      int32   // 0-100
	AvgRating       float64 // 0-5
	StyleFit        StyleFit
	DurationMinutes int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ScoredResource pairs a resource with its computed relevance for one request.
type ScoredResource struct {
	Resource  Resource
	Relevance float64 // 0-100
}

// LearningStyleProfile holds a user's relative preference weights per
// learning modality. It is a ranking input only; the core never mutates it.
type LearningStyleProfile struct {
	UserID      int64
	Visual      int32
	Auditory    int32
	Reading     int32
	Kinesthetic int32
	UpdatedAt   time.Time
}

// TotalWeight returns the sum of the modality weights.
func (p *LearningStyleProfile) TotalWeight() int32 {
	return p.Visual + p.Auditory + p.Reading + p.Kinesthetic
}

// Validate rejects profiles with negative weights.
func (p *LearningStyleProfile) Validate() error {
	if p.Visual < 0 || p.Auditory < 0 || p.Reading < 0 || p.Kinesthetic < 0 {
		return ErrInvalidStyleProfile
	}
	return nil
}
