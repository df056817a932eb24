package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/esbridge/esbridge/internal/analytics"
	esmiddleware "github.com/esbridge/esbridge/internal/api_server/middleware"
	"github.com/esbridge/esbridge/internal/client"
	"github.com/esbridge/esbridge/internal/config"
	"github.com/esbridge/esbridge/internal/instrumentation"
	"github.com/esbridge/esbridge/internal/service"
	"github.com/esbridge/esbridge/internal/transport"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	log      logrus.FieldLogger
	cfg      *config.Config
	listener net.Listener
	metrics  *instrumentation.ApiMetrics
}

// New returns a new instance of an esbridge API server.
func New(
	log logrus.FieldLogger,
	cfg *config.Config,
	listener net.Listener,
	metrics *instrumentation.ApiMetrics,
) *Server {
	return &Server{
		log:      log,
		cfg:      cfg,
		listener: listener,
		metrics:  metrics,
	}
}

func (s *Server) Run(ctx context.Context) error {
	s.log.Println("Initializing backend client")
	backend, err := client.NewFromConfig(ctx, s.cfg)
	if err != nil {
		return fmt.Errorf("creating backend client: %w", err)
	}

	var analyticsOpts []analytics.PublisherOption
	if s.metrics != nil {
		analyticsOpts = append(analyticsOpts, analytics.WithDropCallback(s.metrics.AnalyticsDropped))
	}
	events := analytics.NewFromConfig(s.cfg, s.log, analyticsOpts...)

	s.log.Println("Initializing API server")
	serviceHandler := service.NewServiceHandler(backend, events, s.log)

	router := chi.NewRouter()

	// request size limits should come before logging to prevent DoS attacks from filling logs
	router.Use(
		middleware.RequestSize(int64(s.cfg.Service.HttpMaxRequestSize)),
		esmiddleware.RequestSizeLimiter(s.cfg.Service.HttpMaxUrlLength, s.cfg.Service.HttpMaxNumHeaders),
		esmiddleware.SecurityHeaders,
		esmiddleware.RequestID,
		esmiddleware.RequestLogger(),
		middleware.Recoverer,
	)
	if s.metrics != nil {
		router.Use(s.metrics.ServerMiddleware)
	}

	// a group is a new mux copy with its own copy of the middleware stack,
	// so rate limiting applies to the management API but not to health probes
	router.Group(func(r chi.Router) {
		ConfigureRateLimiter(r, s.cfg.Service.RateLimit)
		transport.NewTransportHandler(serviceHandler, s.log).RegisterRoutes(r)
	})

	if hc := s.cfg.Service.HealthChecks; hc != nil && hc.Enabled {
		router.Method(http.MethodGet, hc.ReadinessPath,
			ReadyzHandler(time.Duration(hc.ReadinessTimeout), backend))
		router.Method(http.MethodGet, hc.LivenessPath, HealthzHandler())
	}

	handler := otelhttp.NewHandler(router, "http-server")
	srv := esmiddleware.NewHTTPServer(handler, s.log, s.cfg.Service.Address, s.cfg)

	go func() {
		<-ctx.Done()
		s.log.Println("Shutdown signal received:", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		events.Close()
	}()

	s.log.Printf("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
