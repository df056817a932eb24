package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/esbridge/esbridge/pkg/reqid"
	chi "github.com/go-chi/chi/v5/middleware"
)

// RequestSizeLimiter rejects requests whose URL or header count exceed the
// given bounds. Rejections use the wire error shape of the management API.
func RequestSizeLimiter(maxURLLength, maxNumHeaders int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.String()) > maxURLLength {
				awserr.Write(w, awserr.New(http.StatusRequestURITooLong, awserr.CodeValidationException,
					fmt.Sprintf("URL exceeds %d characters", maxURLLength)))
				return
			}
			if len(r.Header) > maxNumHeaders {
				awserr.Write(w, awserr.New(http.StatusRequestHeaderFieldsTooLarge, awserr.CodeValidationException,
					fmt.Sprintf("request has more than %d headers", maxNumHeaders)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestID accepts an inbound request ID or assigns a fresh one, and echoes
// it on the response so callers can correlate with backend requests.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(chi.RequestIDHeader)
		if requestID == "" {
			requestID = reqid.NextRequestID()
		}
		ctx := context.WithValue(r.Context(), chi.RequestIDKey, requestID)
		w.Header().Set(chi.RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SecurityHeaders sets conservative response headers for an API-only service.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}
