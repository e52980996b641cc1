package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/mindvault/mindvault/internal/entity"
)

func (h Handlers) recommendResources(c *gin.Context) {
	id, ok := conceptID(c)
	if !ok {
		return
	}

	ranked, err := h.Resource.Recommend(c.Request.Context(), userID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"resources": lo.Map(ranked, func(s entity.ScoredResource, _ int) scoredResourceResponse {
			return toScoredResourceResponse(s)
		}),
	})
}
