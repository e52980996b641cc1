package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/repository"
)

type progressRow struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	ConceptID     int64     `db:"concept_id"`
	Comprehension int32     `db:"comprehension"`
	Practice      int32     `db:"practice"`
	EaseFactor    float64   `db:"ease_factor"`
	IntervalDays  int32     `db:"interval_days"`
	ReviewCount   int32     `db:"review_count"`
	LastReviewAt  time.Time `db:"last_review_at"`
	NextReviewAt  time.Time `db:"next_review_at"`
	TotalStudySec int64     `db:"total_study_seconds"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r progressRow) toEntity() entity.LearningProgress {
	return entity.LearningProgress{
		ID:            r.ID,
		UserID:        r.UserID,
		ConceptID:     r.ConceptID,
		Comprehension: r.Comprehension,
		Practice:      r.Practice,
		EaseFactor:    r.EaseFactor,
		IntervalDays:  r.IntervalDays,
		ReviewCount:   r.ReviewCount,
		LastReviewAt:  r.LastReviewAt,
		NextReviewAt:  r.NextReviewAt,
		TotalStudySec: r.TotalStudySec,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ProgressRepository is the sqlx-backed learning progress store.
type ProgressRepository struct {
	db *sqlx.DB
}

// NewProgressRepository constructs a sqlx-backed repository.
func NewProgressRepository(db *sqlx.DB) repository.ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) GetByUserAndConcept(ctx context.Context, userID, conceptID int64) (*entity.LearningProgress, error) {
	var row progressRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM learning_progress WHERE user_id = $1 AND concept_id = $2`, userID, conceptID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get learning progress: %w", err)
	}
	progress := row.toEntity()
	return &progress, nil
}

func (r *ProgressRepository) Upsert(ctx context.Context, p *entity.LearningProgress) (*entity.LearningProgress, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO learning_progress (
			user_id, concept_id, comprehension, practice, ease_factor, interval_days,
			review_count, last_review_at, next_review_at, total_study_seconds, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id, concept_id) DO UPDATE SET
			comprehension = excluded.comprehension,
			practice = excluded.practice,
			ease_factor = excluded.ease_factor,
			interval_days = excluded.interval_days,
			review_count = excluded.review_count,
			last_review_at = excluded.last_review_at,
			next_review_at = excluded.next_review_at,
			total_study_seconds = excluded.total_study_seconds,
			updated_at = excluded.updated_at
		RETURNING id`,
		p.UserID, p.ConceptID, p.Comprehension, p.Practice, p.EaseFactor, p.IntervalDays,
		p.ReviewCount, p.LastReviewAt, p.NextReviewAt, p.TotalStudySec, p.CreatedAt, p.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("upsert learning progress: %w", err)
	}

	saved := *p
	saved.ID = id
	return &saved, nil
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID int64) ([]entity.LearningProgress, error) {
	var rows []progressRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM learning_progress WHERE user_id = $1 ORDER BY updated_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list learning progress: %w", err)
	}
	return lo.Map(rows, func(row progressRow, _ int) entity.LearningProgress { return row.toEntity() }), nil
}

func (r *ProgressRepository) ListDue(ctx context.Context, userID int64, due time.Time, limit int32) ([]entity.LearningProgress, error) {
	var rows []progressRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM learning_progress
		 WHERE user_id = $1 AND next_review_at <= $2
		 ORDER BY next_review_at ASC, id ASC
		 LIMIT $3`, userID, due, limit)
	if err != nil {
		return nil, fmt.Errorf("list due reviews: %w", err)
	}
	return lo.Map(rows, func(row progressRow, _ int) entity.LearningProgress { return row.toEntity() }), nil
}

func (r *ProgressRepository) DueCounts(ctx context.Context, due time.Time) ([]repository.DueCount, error) {
	var counts []repository.DueCount
	rows, err := r.db.QueryxContext(ctx,
		`SELECT user_id, COUNT(*) AS due FROM learning_progress
		 WHERE next_review_at <= $1 GROUP BY user_id ORDER BY user_id`, due)
	if err != nil {
		return nil, fmt.Errorf("count due reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c repository.DueCount
		if err := rows.Scan(&c.UserID, &c.Count); err != nil {
			return nil, fmt.Errorf("scan due count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
