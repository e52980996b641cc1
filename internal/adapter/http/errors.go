package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindvault/mindvault/internal/entity"
)

// writeError maps domain errors onto HTTP status codes. Unknown errors are
// reported as 500 without leaking internals.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrEmptyAttempt),
		errors.Is(err, entity.ErrInvalidSelfRating),
		errors.Is(err, entity.ErrInvalidProgress),
		errors.Is(err, entity.ErrInvalidDifficulty),
		errors.Is(err, entity.ErrInvalidStyleProfile),
		errors.Is(err, entity.ErrInvalidConceptName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrProgressNotFound),
		errors.Is(err, entity.ErrConceptNotFound),
		errors.Is(err, entity.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
