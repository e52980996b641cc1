package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/mindvault/mindvault/internal/entity"
)

func (h Handlers) completeQuiz(c *gin.Context) {
	id, ok := conceptID(c)
	if !ok {
		return
	}

	var req completeQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz payload"})
		return
	}

	progress, err := h.Review.CompleteQuiz(c.Request.Context(), userID(c), id, req.toEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProgressResponse(progress))
}

func (h Handlers) getProgress(c *gin.Context) {
	id, ok := conceptID(c)
	if !ok {
		return
	}

	progress, err := h.Review.GetProgress(c.Request.Context(), userID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProgressResponse(progress))
}

func (h Handlers) listProgress(c *gin.Context) {
	items, err := h.Review.ListProgress(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"progress": lo.Map(items, func(p entity.LearningProgress, _ int) progressResponse {
			return toProgressResponse(&p)
		}),
	})
}

func (h Handlers) dueReviews(c *gin.Context) {
	limit := int32(20)
	if raw := c.Query("limit"); raw != "" {
		if parsed, ok := parseLimit(raw); ok {
			limit = parsed
		}
	}

	items, err := h.Review.DueReviews(c.Request.Context(), userID(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"due": lo.Map(items, func(p entity.LearningProgress, _ int) progressResponse {
			return toProgressResponse(&p)
		}),
	})
}
