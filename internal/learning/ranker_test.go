package learning

import (
	"math"
	"testing"

	"github.com/mindvault/mindvault/internal/entity"
)

func TestRankResourcesCompositeScore(t *testing.T) {
	engine := newTestEngine(t)

	// Without a profile the style term is neutral: 50 * 0.3 = 15.
	resource := entity.Resource{
		ID:         1,
		Quality:    entity.QualityHigh,
		Authority:  80,
		Engagement: 60,
		AvgRating:  4.0,
	}

	got := engine.RankResources([]entity.Resource{resource}, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 scored resource, got %d", len(got))
	}
	// 15 + 30 + 16 + 12 + 8
	if math.Abs(got[0].Relevance-81) > 1e-9 {
		t.Errorf("expected relevance 81, got %v", got[0].Relevance)
	}
}

func TestRankResourcesStableOnTies(t *testing.T) {
	engine := newTestEngine(t)

	same := entity.Resource{Quality: entity.QualityMedium, Authority: 50, Engagement: 50, AvgRating: 3}
	a, b, c := same, same, same
	a.ID, b.ID, c.ID = 11, 22, 33

	got := engine.RankResources([]entity.Resource{a, b, c}, nil)
	wantIDs := []int64{11, 22, 33}
	for i, s := range got {
		if s.Resource.ID != wantIDs[i] {
			t.Errorf("position %d: got resource %d, want %d (discovery order must survive ties)",
				i, s.Resource.ID, wantIDs[i])
		}
	}
}

func TestRankResourcesNeutralWithoutProfile(t *testing.T) {
	engine := newTestEngine(t)

	// Identical quality signals but wildly different style fits: without a
	// profile every candidate gets the same neutral style contribution.
	visual := entity.Resource{ID: 1, StyleFit: entity.StyleFit{Visual: 100}}
	reading := entity.Resource{ID: 2, StyleFit: entity.StyleFit{Reading: 100}}

	got := engine.RankResources([]entity.Resource{visual, reading}, nil)
	if got[0].Relevance != got[1].Relevance {
		t.Fatalf("expected equal scores without profile, got %v and %v", got[0].Relevance, got[1].Relevance)
	}
	if got[0].Resource.ID != 1 {
		t.Errorf("expected input order preserved, got %d first", got[0].Resource.ID)
	}
}

func TestRankResourcesPrefersProfileMatch(t *testing.T) {
	engine := newTestEngine(t)

	video := entity.Resource{ID: 1, StyleFit: entity.StyleFit{Visual: 95, Auditory: 70}}
	article := entity.Resource{ID: 2, StyleFit: entity.StyleFit{Reading: 95}}
	profile := &entity.LearningStyleProfile{Visual: 80, Auditory: 15, Reading: 5}

	got := engine.RankResources([]entity.Resource{article, video}, profile)
	if got[0].Resource.ID != 1 {
		t.Errorf("expected the visual resource to rank first for a visual learner, got %d", got[0].Resource.ID)
	}
}

func TestRankResourcesMissingMetadata(t *testing.T) {
	engine := newTestEngine(t)

	// A bare resource ranks with worst-case terms, never errors.
	got := engine.RankResources([]entity.Resource{{ID: 9}}, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 scored resource, got %d", len(got))
	}
	if math.Abs(got[0].Relevance-15) > 1e-9 { // neutral style term only
		t.Errorf("expected relevance 15 for empty metadata, got %v", got[0].Relevance)
	}
}

func TestRankResourcesClampsToHundred(t *testing.T) {
	engine := newTestEngine(t)

	maxed := entity.Resource{
		Quality:    entity.QualityHigh,
		Authority:  100,
		Engagement: 100,
		AvgRating:  5,
		StyleFit:   entity.StyleFit{Visual: 100, Auditory: 100, Reading: 100, Kinesthetic: 100},
	}
	profile := &entity.LearningStyleProfile{Visual: 25, Auditory: 25, Reading: 25, Kinesthetic: 25}

	got := engine.RankResources([]entity.Resource{maxed}, profile)
	if got[0].Relevance != 100 {
		t.Errorf("expected relevance clamped to 100, got %v", got[0].Relevance)
	}
}

func TestRankResourcesZeroWeightProfileIsNeutral(t *testing.T) {
	engine := newTestEngine(t)

	resource := entity.Resource{ID: 1, StyleFit: entity.StyleFit{Visual: 100}}
	profile := &entity.LearningStyleProfile{}

	got := engine.RankResources([]entity.Resource{resource}, profile)
	if math.Abs(got[0].Relevance-15) > 1e-9 {
		t.Errorf("expected neutral style contribution for zero-weight profile, got %v", got[0].Relevance)
	}
}
