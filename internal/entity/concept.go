package entity

import (
	"strings"
	"time"
)

// Concept is a unit of knowledge extracted from a user's documents.
// Extraction itself happens upstream; this record is the referential anchor
// that progress, questions and resources hang off.
type Concept struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize ensures defaults & constraints before persistence.
func (c *Concept) Normalize(now time.Time) {
	c.Name = strings.TrimSpace(c.Name)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}
