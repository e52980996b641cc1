package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindvault/mindvault/internal/entity"
)

func TestGetProfileNotFound(t *testing.T) {
	uc := NewProfileUsecase(newFakeProfileRepo())

	if _, err := uc.GetProfile(context.Background(), 1); !errors.Is(err, entity.ErrProfileNotFound) {
		t.Errorf("got %v, want ErrProfileNotFound", err)
	}
}

func TestUpdateProfileRoundTrip(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileUsecase(repo)
	impl := uc.(*profileUsecase)
	fixed := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	impl.clock = func() time.Time { return fixed }

	saved, err := uc.UpdateProfile(context.Background(), 9, &entity.LearningStyleProfile{Visual: 60, Reading: 40})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if saved.UserID != 9 {
		t.Errorf("expected user ID stamped, got %d", saved.UserID)
	}
	if !saved.UpdatedAt.Equal(fixed) {
		t.Errorf("expected update time %v, got %v", fixed, saved.UpdatedAt)
	}

	got, err := uc.GetProfile(context.Background(), 9)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Visual != 60 || got.Reading != 40 {
		t.Errorf("expected weights persisted, got %+v", got)
	}
}

func TestUpdateProfileRejectsInvalidInput(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileUsecase(repo)

	if _, err := uc.UpdateProfile(context.Background(), 1, nil); !errors.Is(err, entity.ErrInvalidStyleProfile) {
		t.Errorf("nil profile: got %v, want ErrInvalidStyleProfile", err)
	}
	bad := &entity.LearningStyleProfile{Visual: -10}
	if _, err := uc.UpdateProfile(context.Background(), 1, bad); !errors.Is(err, entity.ErrInvalidStyleProfile) {
		t.Errorf("negative weight: got %v, want ErrInvalidStyleProfile", err)
	}
	if len(repo.profiles) != 0 {
		t.Errorf("expected nothing persisted, got %d profiles", len(repo.profiles))
	}
}
