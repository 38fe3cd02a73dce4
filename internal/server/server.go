// Package server собирает тестовый HTTP сервер проката: маршруты, middleware,
// метрики и корректную остановку.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/patinfly/internal/server/handlers"
	"github.com/iudanet/patinfly/internal/server/middleware"
	"github.com/iudanet/patinfly/pkg/api"
)

// DefaultShutdownTimeout используется, если Options.ShutdownTimeout не задан
const DefaultShutdownTimeout = 10 * time.Second

// Options параметры сервера
type Options struct {
	Status          api.StatusInfo
	Address         string
	RateLimit       float64 // запросов в секунду на IP; 0 отключает ограничение
	RateBurst       int
	ShutdownTimeout time.Duration
}

// Server тестовый backend для клиента: отдает велосипеды из фикстур
type Server struct {
	httpServer      *http.Server
	handler         http.Handler
	limiter         *middleware.RateLimiter
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New собирает маршруты:
//
//	GET /status
//	GET /bikes
//	GET /bikes/{id}
//	GET /health
//	GET /metrics
func New(opts Options, bikes handlers.BikeSource, logger *slog.Logger) (*Server, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	var limiter *middleware.RateLimiter
	if opts.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(opts.RateLimit, opts.RateBurst, logger)
	}

	bikeHandler := handlers.NewBikeHandler(bikes, logger)
	statusHandler := handlers.NewStatusHandler(opts.Status, logger)
	healthHandler := handlers.NewHealthHandler(opts.Status.Version, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", statusHandler.Status)
	mux.HandleFunc("GET /bikes", bikeHandler.List)
	mux.HandleFunc("GET /bikes/{id}", bikeHandler.Get)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Порядок: recovery -> logging -> metrics -> rate limit -> mux
	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(limiter, logger)(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/health", "/metrics"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
		handler:         handler,
		limiter:         limiter,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Handler полный обработчик с middleware, для httptest
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает адрес до отмены ctx, затем останавливает сервер,
// дожидаясь активных запросов не дольше ShutdownTimeout
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("address", s.httpServer.Addr))
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server", slog.Duration("timeout", s.shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Close освобождает фоновые ресурсы (очистка rate limiter)
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
