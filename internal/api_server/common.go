package apiserver

import (
	"time"

	"github.com/esbridge/esbridge/internal/api_server/middleware"
	"github.com/esbridge/esbridge/internal/config"
	"github.com/go-chi/chi/v5"
)

// GracefulShutdownTimeout is the duration to wait for graceful shutdown
const GracefulShutdownTimeout = 5 * time.Second

// rateLimitMessage is returned in the body of throttled responses.
const rateLimitMessage = "Rate exceeded"

// ConfigureRateLimiter adds rate limiting to a router when enabled in the config
func ConfigureRateLimiter(r chi.Router, cfg *config.RateLimitConfig) {
	if cfg == nil || !cfg.Enabled {
		return
	}
	middleware.InstallRateLimiter(r, middleware.RateLimitOptions{
		Requests:       cfg.Requests,
		Window:         time.Duration(cfg.Window),
		Message:        rateLimitMessage,
		TrustedProxies: cfg.TrustedProxies,
	})
}
