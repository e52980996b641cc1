package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/repository"
)

type resourceRow struct {
	ID              int64     `db:"id"`
	ConceptID       int64     `db:"concept_id"`
	Title           string    `db:"title"`
	URL             string    `db:"url"`
	Quality         string    `db:"quality"`
	Authority       int32     `db:"authority"`
	Engagement      int32     `db:"engagement"`
	AvgRating       float64   `db:"avg_rating"`
	FitVisual       int32     `db:"fit_visual"`
	FitAuditory     int32     `db:"fit_auditory"`
	FitReading      int32     `db:"fit_reading"`
	FitKinesthetic  int32     `db:"fit_kinesthetic"`
	DurationMinutes int32     `db:"duration_minutes"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r resourceRow) toEntity() entity.Resource {
	return entity.Resource{
		ID:         r.ID,
		ConceptID:  r.ConceptID,
		Title:      r.Title,
		URL:        r.URL,
		Quality:    entity.ResourceQuality(r.Quality),
		Authority:  r.Authority,
		Engagement: r.Engagement,
		AvgRating:  r.AvgRating,
		StyleFit: entity.StyleFit{
			Visual:      r.FitVisual,
			Auditory:    r.FitAuditory,
			Reading:     r.FitReading,
			Kinesthetic: r.FitKinesthetic,
		},
		DurationMinutes: r.DurationMinutes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ResourceRepository is the sqlx-backed resource store.
type ResourceRepository struct {
	db *sqlx.DB
}

// NewResourceRepository constructs a sqlx-backed repository.
func NewResourceRepository(db *sqlx.DB) repository.ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(ctx context.Context, res *entity.Resource) (*entity.Resource, error) {
	now := time.Now()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	res.UpdatedAt = now

	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO resources (
			concept_id, title, url, quality, authority, engagement, avg_rating,
			fit_visual, fit_auditory, fit_reading, fit_kinesthetic, duration_minutes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		res.ConceptID, res.Title, res.URL, string(res.Quality), res.Authority, res.Engagement,
		res.AvgRating, res.StyleFit.Visual, res.StyleFit.Auditory, res.StyleFit.Reading,
		res.StyleFit.Kinesthetic, res.DurationMinutes, res.CreatedAt, res.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	saved := *res
	saved.ID = id
	return &saved, nil
}

func (r *ResourceRepository) ListByConcept(ctx context.Context, conceptID int64) ([]entity.Resource, error) {
	var rows []resourceRow
	// Discovery order: the ranker's stable sort preserves it on score ties.
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM resources WHERE concept_id = $1 ORDER BY id ASC`, conceptID)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return lo.Map(rows, func(row resourceRow, _ int) entity.Resource { return row.toEntity() }), nil
}
