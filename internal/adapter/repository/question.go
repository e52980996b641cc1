package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mindvault/mindvault/internal/entity"
	"github.com/mindvault/mindvault/internal/repository"
)

type questionRow struct {
	ID          int64  `db:"id"`
	ConceptID   int64  `db:"concept_id"`
	Difficulty  string `db:"difficulty"`
	Prompt      string `db:"prompt"`
	Options     string `db:"options"` // JSON array
	AnswerIndex int32  `db:"answer_index"`
	Position    int32  `db:"position"`
}

func (r questionRow) toEntity() (entity.Question, error) {
	var options []string
	if r.Options != "" {
		if err := json.Unmarshal([]byte(r.Options), &options); err != nil {
			return entity.Question{}, fmt.Errorf("decode question options: %w", err)
		}
	}
	return entity.Question{
		ID:          r.ID,
		ConceptID:   r.ConceptID,
		Difficulty:  entity.Difficulty(r.Difficulty),
		Prompt:      r.Prompt,
		Options:     options,
		AnswerIndex: r.AnswerIndex,
		Position:    r.Position,
	}, nil
}

// QuestionRepository is the sqlx-backed question store.
type QuestionRepository struct {
	db *sqlx.DB
}

// NewQuestionRepository constructs a sqlx-backed repository.
func NewQuestionRepository(db *sqlx.DB) repository.QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, q *entity.Question) (*entity.Question, error) {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return nil, fmt.Errorf("encode question options: %w", err)
	}

	// Position defaults to the current tier size, preserving insertion order.
	var id int64
	err = r.db.QueryRowxContext(ctx, `
		INSERT INTO questions (concept_id, difficulty, prompt, options, answer_index, position)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COUNT(*) FROM questions WHERE concept_id = $1 AND difficulty = $2))
		RETURNING id`,
		q.ConceptID, string(q.Difficulty), q.Prompt, string(options), q.AnswerIndex,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	saved := *q
	saved.ID = id
	return &saved, nil
}

func (r *QuestionRepository) ListByConcept(ctx context.Context, conceptID int64, difficulty entity.Difficulty, limit int32) ([]entity.Question, error) {
	var rows []questionRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM questions
		WHERE concept_id = $1 AND difficulty = $2
		ORDER BY position ASC, id ASC
		LIMIT $3`, conceptID, string(difficulty), limit)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	questions := make([]entity.Question, 0, len(rows))
	for _, row := range rows {
		q, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}
