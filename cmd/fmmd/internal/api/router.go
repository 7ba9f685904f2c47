package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig contains all dependencies needed to construct the HTTP
// router. Exported for dependency injection in tests: a router built from
// a zero-cost RateLimitConfig can be exercised with httptest.NewServer
// without the process's real rate limits getting in the way.
type RouterConfig struct {
	// Store backs field compute/cache/progress. Required.
	Store *Store

	// RateLimiter is an optional pre-configured rate limiter. If nil, a
	// new one is built from RateLimitConfig.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is only used if RateLimiter is nil.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins overrides the default allowed origins.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware, useful for
	// benchmarks and quiet test output.
	DisableLogging bool
}

// NewRouter constructs the HTTP router with all middleware and routes.
// It is pure: no goroutine besides the rate limiter's cleanup loop is
// started, and no listener is opened, so it is safe to drive with
// httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	// Rate limiting before CORS, to reject over-limit callers as cheaply
	// as possible.
	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Use(metricsMiddleware(func(req *http.Request) string {
		rctx := chi.RouteContext(req.Context())
		if rctx == nil {
			return req.URL.Path
		}
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
		return req.URL.Path
	}))

	h := &handlers{store: cfg.Store}

	r.Route("/api/fields", func(r chi.Router) {
		r.Post("/unsigned", h.handleUnsignedDistance)
		r.Post("/signed", h.handleSignedDistance)
		r.Get("/{id}", h.handleGetField)
		r.Get("/{id}.png", h.handleGetFieldPNG)
	})

	r.Get("/ws/progress/{id}", h.handleProgress)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
