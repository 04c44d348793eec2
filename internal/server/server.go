package server

import (
	"context"
	"time"

	"github.com/MKhiriev/cargo-settings/internal/config"
	"github.com/MKhiriev/cargo-settings/internal/handler"
	"github.com/MKhiriev/cargo-settings/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may finish after a
// stop signal.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
	go func() {
		errCh <- s.httpServer.listenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Err(err).Str("func", "server.RunServer").Msg("HTTP server stopped unexpectedly")
		}
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			s.logger.Err(err).Str("func", "server.RunServer").Msg("error shutting down")
			return err
		}

		<-errCh
		s.logger.Info().Msg("server shutdown gracefully")
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
