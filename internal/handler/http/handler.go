package http

import (
	"time"

	"github.com/MKhiriev/cargo-settings/internal/config"
	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/service"
)

// defaultMaxUploadSize is used when the server config carries no limit.
const defaultMaxUploadSize int64 = 20 << 20

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	maxUploadSize  int64
	files          config.Files

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxUploadSize := cfg.Server.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadSize:  maxUploadSize,
		files:          cfg.Storage.Files,
		logger:         logger,
	}
}
