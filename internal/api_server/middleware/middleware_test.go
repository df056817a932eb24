package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/esbridge/esbridge/internal/awserr"
	chi "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRequestSizeLimiter(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name       string
		url        string
		numHeaders int
		wantCode   int
	}{
		{
			name:     "request within limits passes",
			url:      "/test",
			wantCode: http.StatusOK,
		},
		{
			name:     "URL over the limit is rejected",
			url:      "/test?" + strings.Repeat("x", 100),
			wantCode: http.StatusRequestURITooLong,
		},
		{
			name:       "too many headers are rejected",
			url:        "/test",
			numHeaders: 20,
			wantCode:   http.StatusRequestHeaderFieldsTooLarge,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.url, nil)
			for i := 0; i < tc.numHeaders; i++ {
				r.Header.Set(fmt.Sprintf("X-Test-Header-%d", i), "value")
			}

			rr := httptest.NewRecorder()
			RequestSizeLimiter(50, 10)(okHandler).ServeHTTP(rr, r)
			assert.Equal(t, tc.wantCode, rr.Code)
			if tc.wantCode != http.StatusOK {
				assert.Equal(t, awserr.CodeValidationException, rr.Header().Get(awserr.HeaderErrorType))
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	echoHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.GetReqID(r.Context())))
	})

	t.Run("inbound request ID is kept and echoed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/test", nil)
		r.Header.Set(chi.RequestIDHeader, "caller-supplied-id")

		rr := httptest.NewRecorder()
		RequestID(echoHandler).ServeHTTP(rr, r)

		assert.Equal(t, "caller-supplied-id", rr.Body.String())
		assert.Equal(t, "caller-supplied-id", rr.Header().Get(chi.RequestIDHeader))
	})

	t.Run("missing request ID gets a fresh one", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		rr := httptest.NewRecorder()
		RequestID(echoHandler).ServeHTTP(rr, r)

		assert.NotEmpty(t, rr.Body.String())
		assert.Equal(t, rr.Body.String(), rr.Header().Get(chi.RequestIDHeader))
	})
}

func TestSecurityHeaders(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rr, r)

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
}
