package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with CORS enabled; the SPA is served from
// a different origin.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(h.logger))
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		api.GET("/patients", h.ListPatients)
		api.POST("/patients", h.CreatePatient)
		api.GET("/patients/:patient_id", h.GetPatient)
		api.PUT("/patients/:patient_id", h.UpdatePatient)
		api.POST("/patients/:patient_id/scores", h.CreateScore)
		api.GET("/patients/:patient_id/scores", h.ListScores)
		api.GET("/patients/:patient_id/trends", h.GetTrends)
		api.GET("/dashboard", h.GetDashboard)
	}
	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
