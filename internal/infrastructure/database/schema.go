package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the schema if it does not exist yet. Statements are kept
// portable between postgres and sqlite; only the id column type differs.
func Migrate(db *sqlx.DB, driver string) error {
	id := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "postgres" {
		id = "BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS concepts (
			id %s,
			user_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			UNIQUE (user_id, name)
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS learning_progress (
			id %s,
			user_id BIGINT NOT NULL,
			concept_id BIGINT NOT NULL REFERENCES concepts(id),
			comprehension INTEGER NOT NULL DEFAULT 0,
			practice INTEGER NOT NULL DEFAULT 0,
			ease_factor DOUBLE PRECISION NOT NULL DEFAULT 2.5,
			interval_days INTEGER NOT NULL DEFAULT 1,
			review_count INTEGER NOT NULL DEFAULT 0,
			last_review_at TIMESTAMP NOT NULL,
			next_review_at TIMESTAMP NOT NULL,
			total_study_seconds BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			UNIQUE (user_id, concept_id)
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS questions (
			id %s,
			concept_id BIGINT NOT NULL REFERENCES concepts(id),
			difficulty TEXT NOT NULL,
			prompt TEXT NOT NULL,
			options TEXT NOT NULL DEFAULT '[]',
			answer_index INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS resources (
			id %s,
			concept_id BIGINT NOT NULL REFERENCES concepts(id),
			title TEXT NOT NULL,
			url TEXT NOT NULL DEFAULT '',
			quality TEXT NOT NULL DEFAULT 'low',
			authority INTEGER NOT NULL DEFAULT 0,
			engagement INTEGER NOT NULL DEFAULT 0,
			avg_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			fit_visual INTEGER NOT NULL DEFAULT 0,
			fit_auditory INTEGER NOT NULL DEFAULT 0,
			fit_reading INTEGER NOT NULL DEFAULT 0,
			fit_kinesthetic INTEGER NOT NULL DEFAULT 0,
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, id),
		`CREATE TABLE IF NOT EXISTS learning_styles (
			user_id BIGINT PRIMARY KEY,
			visual INTEGER NOT NULL DEFAULT 0,
			auditory INTEGER NOT NULL DEFAULT 0,
			reading INTEGER NOT NULL DEFAULT 0,
			kinesthetic INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_progress_due ON learning_progress (user_id, next_review_at)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_concept ON questions (concept_id, difficulty, position)`,
		`CREATE INDEX IF NOT EXISTS idx_resources_concept ON resources (concept_id, id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}
