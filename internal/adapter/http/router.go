package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mindvault/mindvault/internal/usecase"
)

// defaultUserID is used until multi-user auth lands in front of this API.
const defaultUserID = int64(1000)

// Handlers groups the usecases the HTTP surface exposes.
type Handlers struct {
	Review   usecase.ReviewUsecase
	Question usecase.QuestionUsecase
	Resource usecase.ResourceUsecase
	Profile  usecase.ProfileUsecase
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(logger *logrus.Logger, h Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-Id"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/concepts/:id/quiz", h.completeQuiz)
		v1.GET("/concepts/:id/questions", h.nextQuestions)
		v1.GET("/concepts/:id/resources", h.recommendResources)
		v1.GET("/concepts/:id/progress", h.getProgress)
		v1.GET("/progress", h.listProgress)
		v1.GET("/progress/due", h.dueReviews)
		v1.GET("/profile", h.getProfile)
		v1.PUT("/profile", h.updateProfile)
	}

	return router
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.FullPath(),
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["error"] = c.Errors.Last().Error()
			logger.WithFields(fields).Error("request completed")
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			logger.WithFields(fields).Warn("request completed")
			return
		}
		logger.WithFields(fields).Info("request completed")
	}
}

// userID resolves the acting user from the X-User-Id header, falling back
// to the single-user default.
func userID(c *gin.Context) int64 {
	if raw := c.GetHeader("X-User-Id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			return id
		}
	}
	return defaultUserID
}

func conceptID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid concept id"})
		return 0, false
	}
	return id, true
}
