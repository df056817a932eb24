package apiserver

import (
	"context"
	"net/http"
	"time"
)

const defaultReadinessTimeout = 2 * time.Second

// HealthChecker is implemented by dependencies that can be probed for
// readiness. The backend client probes the management API it forwards to.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// ReadyzHandler reports 503 as soon as any check fails. All checks share
// one timeout so a hung backend cannot stall the probe. Probes get an
// empty body either way.
func ReadyzHandler(timeout time.Duration, checks ...HealthChecker) http.Handler {
	if timeout <= 0 {
		timeout = defaultReadinessTimeout
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if !ready(ctx, checks) {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func ready(ctx context.Context, checks []HealthChecker) bool {
	for _, check := range checks {
		if check == nil {
			continue
		}
		if err := check.CheckHealth(ctx); err != nil {
			return false
		}
	}
	return true
}

// HealthzHandler answers liveness probes. Reaching the handler at all is
// the signal, so it unconditionally reports OK with an empty body.
func HealthzHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
