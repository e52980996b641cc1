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

type conceptRow struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r conceptRow) toEntity() entity.Concept {
	return entity.Concept{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ConceptRepository is the sqlx-backed concept store.
type ConceptRepository struct {
	db *sqlx.DB
}

// NewConceptRepository constructs a sqlx-backed repository.
func NewConceptRepository(db *sqlx.DB) repository.ConceptRepository {
	return &ConceptRepository{db: db}
}

func (r *ConceptRepository) Create(ctx context.Context, c *entity.Concept) (*entity.Concept, error) {
	if c.Name == "" {
		return nil, entity.ErrInvalidConceptName
	}
	c.Normalize(time.Now())

	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO concepts (user_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		c.UserID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create concept: %w", err)
	}

	saved := *c
	saved.ID = id
	return &saved, nil
}

func (r *ConceptRepository) GetByID(ctx context.Context, userID, id int64) (*entity.Concept, error) {
	var row conceptRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM concepts WHERE user_id = $1 AND id = $2`, userID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrConceptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get concept: %w", err)
	}
	concept := row.toEntity()
	return &concept, nil
}

func (r *ConceptRepository) FindByName(ctx context.Context, userID int64, name string) (*entity.Concept, error) {
	var row conceptRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM concepts WHERE user_id = $1 AND name = $2`, userID, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find concept: %w", err)
	}
	concept := row.toEntity()
	return &concept, nil
}

func (r *ConceptRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Concept, error) {
	var rows []conceptRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM concepts WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list concepts: %w", err)
	}
	return lo.Map(rows, func(row conceptRow, _ int) entity.Concept { return row.toEntity() }), nil
}
