package server

import (
	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/gap"
	"skillbridge-backend/internal/interview"
	"skillbridge-backend/internal/resume"
	"skillbridge-backend/internal/roadmap"
	"skillbridge-backend/internal/services/health"
	"skillbridge-backend/internal/shared/config"
	"skillbridge-backend/internal/shared/metrics"
	"skillbridge-backend/internal/shared/server/middleware"
	"skillbridge-backend/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	scoreLimiter := middleware.NewRateLimiter(nil)
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: scoreLimiter,
			GroupFor: func(c *gin.Context) string {
				if c.FullPath() == "/api/v1/interview/score" {
					return "SCORING"
				}
				return ""
			},
			Rules: map[string]middleware.RateLimitRule{
				"SCORING": {Rate: cfg.ScoreRateRPS, Burst: cfg.ScoreRateBurst},
			},
		}),
	)

	healthSvc := health.NewService()
	roadmapHandler := roadmap.NewHandler()
	gapHandler := gap.NewHandler()
	interviewHandler := interview.NewHandler()
	resumeHandler := resume.NewHandler(cfg.MaxUploadBytes)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	roadmapHandler.RegisterRoutes(api)
	gapHandler.RegisterRoutes(api)
	interviewHandler.RegisterRoutes(api)
	resumeHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
