package middleware

import (
	"log"
	"net/http"
	"os"
	"runtime"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request with method, path, status, and
// latency in chi's default format.
func RequestLogger() func(http.Handler) http.Handler {
	stdLogger := log.New(os.Stdout, "", log.LstdFlags)
	noColor := runtime.GOOS == "windows"

	return chimw.RequestLogger(&chimw.DefaultLogFormatter{
		Logger:  stdLogger,
		NoColor: noColor,
	})
}
