package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/esbridge/esbridge/client"
	apiserver "github.com/esbridge/esbridge/internal/api_server"
	"github.com/esbridge/esbridge/internal/config"
	"github.com/esbridge/esbridge/internal/instrumentation"
	"github.com/esbridge/esbridge/pkg/log"
)

func main() {
	logger := log.InitLogs()
	logger.Println("Starting domain management bridge")
	defer logger.Println("Domain management bridge stopped")

	cfg, err := config.LoadOrGenerate(config.ConfigFile())
	if err != nil {
		logger.Fatalf("reading configuration: %v", err)
	}
	logger.Printf("Using config: %s", cfg)

	logger.SetLevel(log.Level(cfg.LogLevel()))

	// also write out a client config file
	err = client.WriteConfig(config.ClientConfigFile(), cfg.Service.BaseUrl)
	if err != nil {
		logger.Fatalf("writing client config: %v", err)
	}

	metrics := instrumentation.NewApiMetrics(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		listener, err := net.Listen("tcp", cfg.Service.Address)
		if err != nil {
			logger.Fatalf("creating listener: %s", err)
		}

		server := apiserver.New(logger, cfg, listener, metrics)
		if err := server.Run(ctx); err != nil {
			logger.Fatalf("Error running server: %s", err)
		}
		cancel()
	}()

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		go func() {
			metricsServer := instrumentation.NewMetricsServer(logger, cfg, metrics)
			if err := metricsServer.Run(ctx); err != nil {
				logger.Fatalf("Error running server: %s", err)
			}
			cancel()
		}()
	}

	<-ctx.Done()
}
