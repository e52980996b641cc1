package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/mindvault/mindvault/internal/entity"
)

func (h Handlers) nextQuestions(c *gin.Context) {
	id, ok := conceptID(c)
	if !ok {
		return
	}

	limit := int32(10)
	if raw := c.Query("limit"); raw != "" {
		if parsed, ok := parseLimit(raw); ok {
			limit = parsed
		}
	}

	questions, difficulty, err := h.Question.NextQuestions(c.Request.Context(), userID(c), id, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"difficulty": string(difficulty),
		"questions": lo.Map(questions, func(q entity.Question, _ int) questionResponse {
			return toQuestionResponse(q)
		}),
	})
}

func parseLimit(raw string) (int32, bool) {
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || parsed <= 0 || parsed > 100 {
		return 0, false
	}
	return int32(parsed), true
}
