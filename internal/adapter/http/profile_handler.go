package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindvault/mindvault/internal/entity"
)

func (h Handlers) getProfile(c *gin.Context) {
	profile, err := h.Profile.GetProfile(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h Handlers) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	profile, err := h.Profile.UpdateProfile(c.Request.Context(), userID(c), &entity.LearningStyleProfile{
		Visual:      req.Visual,
		Auditory:    req.Auditory,
		Reading:     req.Reading,
		Kinesthetic: req.Kinesthetic,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}
