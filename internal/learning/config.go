package learning

import "fmt"

// Config holds the policy constants of the engine. The defaults reproduce
// the observed production behaviour; treat them as tunables, not law.
type Config struct {
	// Quality scoring: objective accuracy dominates, self-assessment is a
	// secondary signal damping over- and under-confidence.
	AccuracyWeight   float64 // default 0.7
	SelfRatingWeight float64 // default 0.3

	// Comprehension blend applied after each session.
	ComprehensionRetention float64 // weight of the prior estimate, default 0.7
	ComprehensionGain      float64 // weight of the session score, default 0.3

	// PracticeIncrement is added to practice per completed session.
	PracticeIncrement int32 // default 10

	// Spaced repetition bounds.
	InitialEaseFactor float64 // default 2.5
	MinEaseFactor     float64 // default 1.3

	// Difficulty selection thresholds on comprehension.
	MediumThreshold   int32 // comprehension at or above → medium, default 50
	AdvancedThreshold int32 // comprehension at or above → advanced, default 80

	// Weights holds the resource ranking policy.
	Weights RankWeights
}

// RankWeights holds the composite relevance weighting for resource ranking.
// Kept in one place so the policy can be tuned without touching the ranker.
type RankWeights struct {
	StyleMatch float64 // default 0.3
	Authority  float64 // default 0.2
	Engagement float64 // default 0.2
	Rating     float64 // default 0.1, applied to rating scaled to 0-100

	HighQualityBonus   float64 // default 30
	MediumQualityBonus float64 // default 15
}

// DefaultConfig returns the documented default policy.
func DefaultConfig() Config {
	return Config{
		AccuracyWeight:         0.7,
		SelfRatingWeight:       0.3,
		ComprehensionRetention: 0.7,
		ComprehensionGain:      0.3,
		PracticeIncrement:      10,
		InitialEaseFactor:      2.5,
		MinEaseFactor:          1.3,
		MediumThreshold:        50,
		AdvancedThreshold:      80,
		Weights: RankWeights{
			StyleMatch:         0.3,
			Authority:          0.2,
			Engagement:         0.2,
			Rating:             0.1,
			HighQualityBonus:   30,
			MediumQualityBonus: 15,
		},
	}
}

func (c Config) validate() error {
	if c.AccuracyWeight < 0 || c.SelfRatingWeight < 0 || c.AccuracyWeight+c.SelfRatingWeight == 0 {
		return fmt.Errorf("learning: invalid quality weights %.2f/%.2f", c.AccuracyWeight, c.SelfRatingWeight)
	}
	if c.ComprehensionRetention < 0 || c.ComprehensionGain < 0 || c.ComprehensionRetention+c.ComprehensionGain == 0 {
		return fmt.Errorf("learning: invalid comprehension blend %.2f/%.2f", c.ComprehensionRetention, c.ComprehensionGain)
	}
	if c.MinEaseFactor <= 0 {
		return fmt.Errorf("learning: minimum ease factor %.2f must be positive", c.MinEaseFactor)
	}
	if c.InitialEaseFactor < c.MinEaseFactor {
		return fmt.Errorf("learning: initial ease factor %.2f below minimum %.2f", c.InitialEaseFactor, c.MinEaseFactor)
	}
	if c.PracticeIncrement < 0 {
		return fmt.Errorf("learning: practice increment %d must not be negative", c.PracticeIncrement)
	}
	if c.MediumThreshold < 0 || c.AdvancedThreshold > 100 || c.MediumThreshold > c.AdvancedThreshold {
		return fmt.Errorf("learning: invalid difficulty thresholds %d/%d", c.MediumThreshold, c.AdvancedThreshold)
	}
	return nil
}

// Engine evaluates quiz attempts against the configured policy.
// It is stateless and safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine from the given config.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the policy the engine was built with.
func (e *Engine) Config() Config { return e.cfg }
