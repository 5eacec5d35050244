package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resumeiq-backend/internal/auth"
	"resumeiq-backend/internal/reports"
	"resumeiq-backend/internal/resumes"
	"resumeiq-backend/internal/shared/config"
	"resumeiq-backend/internal/shared/metrics"
	"resumeiq-backend/internal/shared/server/middleware"
	"resumeiq-backend/internal/shared/server/respond"
	"resumeiq-backend/internal/users"
)

// Rate-limit groups. AUTH protects the OAuth endpoints against brute force;
// AI throttles the expensive upload/generate endpoints; everything else falls
// into DEFAULT.
const (
	rateGroupAuth    = "AUTH"
	rateGroupAI      = "AI"
	rateGroupDefault = "DEFAULT"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	ReportHandler *reports.Handler
	UserHandler   *users.Handler
	GoogleAuth    *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(rateLimitConfig()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.ReportHandler != nil {
		deps.ReportHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig mirrors the limiter tiers as token buckets: 100 req/15 min
// generally, 10 req/10 min on auth, 20 req/hour on the AI-backed endpoints.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: rateGroupDefault,
		Rules: map[string]middleware.RateLimitRule{
			rateGroupDefault: {Rate: 100.0 / 900, Burst: 100},
			rateGroupAuth:    {Rate: 10.0 / 600, Burst: 10},
			rateGroupAI:      {Rate: 20.0 / 3600, Burst: 20},
		},
		GroupFor: func(c *gin.Context) string {
			path := c.Request.URL.Path
			switch {
			case strings.HasPrefix(path, "/api/v1/auth/"):
				return rateGroupAuth
			case path == "/api/v1/report/generate", path == "/api/v1/resume/upload":
				return rateGroupAI
			default:
				return rateGroupDefault
			}
		},
	}
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
