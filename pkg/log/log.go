// Package log configures the process-wide logrus logger and carries the
// request id from the router context into log fields.
package log

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

func InitLogs() *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetReportCaller(true)

	return log
}

// Level parses a configured level name, falling back to info when the name
// is empty or unknown.
func Level(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// WithReqIDFromCtx returns a logger carrying the request id set by
// middleware.RequestID, so log lines can be matched to API responses.
func WithReqIDFromCtx(ctx context.Context, inner logrus.FieldLogger) logrus.FieldLogger {
	return WithReqID(middleware.GetReqID(ctx), inner)
}

func WithReqID(reqID string, inner logrus.FieldLogger) logrus.FieldLogger {
	return inner.WithField("request_id", reqID)
}
