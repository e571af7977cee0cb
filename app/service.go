package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/voltplan/voltplan/api/schedule"
	"github.com/voltplan/voltplan/config"
	"github.com/voltplan/voltplan/connectors/wholesale"
	"github.com/voltplan/voltplan/core/prices"
	"github.com/voltplan/voltplan/core/scheduler"
	"github.com/voltplan/voltplan/infra/logger"
	"github.com/voltplan/voltplan/infra/metrics"
	"github.com/voltplan/voltplan/infra/mqtt"
)

// Service wires the scheduler, price provider, sinks and HTTP server.
type Service struct {
	srv         *http.Server
	publisher   *mqtt.Publisher
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logger.SetGlobalLevel(cfg.Logging.Level)
	logg := logger.New("service")

	sink, err := metrics.NewFromConfig(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	var provider prices.Provider
	switch cfg.Prices.Source {
	case "wholesale":
		provider = wholesale.New(cfg.Prices.URL, cfg.Prices.Token)
	default:
		series, err := cfg.Prices.StaticSeries()
		if err != nil {
			return nil, fmt.Errorf("static prices: %w", err)
		}
		provider = prices.NewStatic(series)
	}

	var publisher *mqtt.Publisher
	if cfg.MQTT.Enabled {
		publisher, err = mqtt.NewPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
	}

	sched := scheduler.New(scheduler.SimplexSolver{}, logger.New("scheduler"), sink)

	mux := http.NewServeMux()
	var pub schedule.Publisher
	if publisher != nil {
		pub = publisher
	}
	mux.Handle("/schedule", schedule.NewHandler(sched, provider, pub, logger.New("api")))
	mux.Handle("/healthz", schedule.NewHealthHandler())

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSeconds) * time.Second,
	}

	return &Service{
		srv:         srv,
		publisher:   publisher,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.publisher != nil {
		s.publisher.Close()
	}
	return nil
}
