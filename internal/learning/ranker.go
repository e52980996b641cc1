package learning

import (
	"sort"

	"github.com/samber/lo"

	"github.com/mindvault/mindvault/internal/entity"
)

// neutralStyleMatch is assumed when no usable profile is supplied, so that
// ranking differences come only from the quality signals.
const neutralStyleMatch = 50.0

// RankResources scores the candidate resources against the user's learning
// style profile and orders them by relevance, highest first. The sort is
// stable: candidates with equal scores keep their discovery order.
//
// profile may be nil. A resource missing metadata scores 0 for the missing
// term; ranking always yields a total order over all candidates.
func (e *Engine) RankResources(resources []entity.Resource, profile *entity.LearningStyleProfile) []entity.ScoredResource {
	scored := lo.Map(resources, func(r entity.Resource, _ int) entity.ScoredResource {
		return entity.ScoredResource{Resource: r, Relevance: e.scoreResource(r, profile)}
	})
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})
	return scored
}

func (e *Engine) scoreResource(r entity.Resource, profile *entity.LearningStyleProfile) float64 {
	w := e.cfg.Weights

	composite := e.styleMatch(r.StyleFit, profile)*w.StyleMatch +
		e.qualityBonus(r.Quality) +
		float64(r.Authority)*w.Authority +
		float64(r.Engagement)*w.Engagement +
		r.AvgRating*20*w.Rating

	return clampFloat(composite, 0, 100)
}

// styleMatch is the profile-weighted average of the resource's per-modality
// fit scores, on a 0-100 scale.
func (e *Engine) styleMatch(fit entity.StyleFit, profile *entity.LearningStyleProfile) float64 {
	if profile == nil || profile.TotalWeight() == 0 {
		return neutralStyleMatch
	}
	weighted := float64(fit.Visual)*float64(profile.Visual) +
		float64(fit.Auditory)*float64(profile.Auditory) +
		float64(fit.Reading)*float64(profile.Reading) +
		float64(fit.Kinesthetic)*float64(profile.Kinesthetic)
	return weighted / float64(profile.TotalWeight())
}

func (e *Engine) qualityBonus(q entity.ResourceQuality) float64 {
	switch q {
	case entity.QualityHigh:
		return e.cfg.Weights.HighQualityBonus
	case entity.QualityMedium:
		return e.cfg.Weights.MediumQualityBonus
	default:
		return 0
	}
}
