package entity

import "errors"

// Domain errors for learning progress and related aggregates.
var (
	ErrEmptyAttempt        = errors.New("quiz attempt has no answered questions")
	ErrInvalidSelfRating   = errors.New("self rating must be between 1 and 5")
	ErrInvalidProgress     = errors.New("malformed learning progress record")
	ErrProgressNotFound    = errors.New("learning progress not found")
	ErrConceptNotFound     = errors.New("concept not found")
	ErrInvalidConceptName  = errors.New("invalid concept name")
	ErrInvalidDifficulty   = errors.New("invalid question difficulty")
	ErrInvalidStyleProfile = errors.New("learning style weights must be non-negative")
	ErrProfileNotFound     = errors.New("learning style profile not found")
)
