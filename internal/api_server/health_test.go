package apiserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

func TestReadyzHandler(t *testing.T) {
	healthy := checkerFunc(func(ctx context.Context) error { return nil })
	unhealthy := checkerFunc(func(ctx context.Context) error { return errors.New("backend unreachable") })

	cases := []struct {
		name     string
		checks   []HealthChecker
		wantCode int
	}{
		{"no checks", nil, http.StatusOK},
		{"healthy check", []HealthChecker{healthy}, http.StatusOK},
		{"failing check", []HealthChecker{unhealthy}, http.StatusServiceUnavailable},
		{"one failing among healthy", []HealthChecker{healthy, unhealthy}, http.StatusServiceUnavailable},
		{"nil checks are skipped", []HealthChecker{nil, healthy}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			ReadyzHandler(time.Second, tc.checks...).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tc.wantCode, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestReadyzHandlerAppliesTimeout(t *testing.T) {
	var sawDeadline bool
	check := checkerFunc(func(ctx context.Context) error {
		_, sawDeadline = ctx.Deadline()
		return nil
	})

	rr := httptest.NewRecorder()
	// A non-positive timeout falls back to the default deadline
	ReadyzHandler(0, check).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, sawDeadline)
}

func TestHealthzHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	HealthzHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}
