package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/clinic-portal/internal/handler"
	"github.com/jwalitptl/clinic-portal/internal/handler/metrics"
	"github.com/jwalitptl/clinic-portal/internal/middleware"
)

// Handler registers a set of routes on the shared root group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORS          middleware.CORSConfig
	SessionCookie string
	SessionMaxAge int
}

type Router struct {
	engine *gin.Engine
}

func New(cfg Config, metricsH *metrics.Handler, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  cfg.RateLimit,
		Burst: cfg.RateBurst,
	})

	engine.Use(
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORS),
		middleware.NoStore(),
		limiter.RateLimit(),
		middleware.Session(cfg.SessionCookie, cfg.SessionMaxAge),
		metricsH.Track(),
	)

	root := engine.Group("/")
	for _, h := range handlers {
		h.RegisterRoutes(root)
	}
	metricsH.RegisterRoutes(root)
	engine.GET("/healthz", handler.HealthCheck)

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
