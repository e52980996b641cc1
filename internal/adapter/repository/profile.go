package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/repository"
)

type profileRow struct {
	UserID      int64     `db:"user_id"`
	Visual      int32     `db:"visual"`
	Auditory    int32     `db:"auditory"`
	Reading     int32     `db:"reading"`
	Kinesthetic int32     `db:"kinesthetic"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ProfileRepository is the sqlx-backed learning style store.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository constructs a sqlx-backed repository.
func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID int64) (*entity.LearningStyleProfile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM learning_styles WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get learning style profile: %w", err)
	}
	return &entity.LearningStyleProfile{
		UserID:      row.UserID,
		Visual:      row.Visual,
		Auditory:    row.Auditory,
		Reading:     row.Reading,
		Kinesthetic: row.Kinesthetic,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p *entity.LearningStyleProfile) (*entity.LearningStyleProfile, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO learning_styles (user_id, visual, auditory, reading, kinesthetic, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			visual = excluded.visual,
			auditory = excluded.auditory,
			reading = excluded.reading,
			kinesthetic = excluded.kinesthetic,
			updated_at = excluded.updated_at`,
		p.UserID, p.Visual, p.Auditory, p.Reading, p.Kinesthetic, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert learning style profile: %w", err)
	}

	saved := *p
	return &saved, nil
}
