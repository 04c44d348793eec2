// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/cargo-settings/internal/config"
	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/store"
	"github.com/robfig/cron/v3"
)

// StagingSweeper removes staged contract uploads that were never committed
// or discarded, e.g. because the process died between the two steps.
type StagingSweeper struct {
	files    store.ContractFileStorage
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewStagingSweeper(files store.ContractFileStorage, cfg config.Workers, logger *logger.Logger) *StagingSweeper {
	return &StagingSweeper{
		files:    files,
		interval: cfg.StagingSweepInterval,
		maxAge:   cfg.StagingMaxAge,
		now:      time.Now,
		logger:   logger.WithComponent("staging_sweeper"),
	}
}

// Run sweeps once immediately and then on every interval tick.
func (s *StagingSweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.interval), func() { s.sweep(ctx) }); err != nil {
		s.logger.Err(err).Str("func", "StagingSweeper.Run").Dur("interval", s.interval).Msg("error scheduling staging sweep")
		return
	}

	s.logger.Info().Dur("interval", s.interval).Dur("max_age", s.maxAge).Msg("staging sweeper started")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	s.logger.Info().Msg("staging sweeper stopped")
}

func (s *StagingSweeper) sweep(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}

	removed, err := s.files.SweepStaged(ctx, s.now().Add(-s.maxAge))
	if err != nil {
		s.logger.Err(err).Str("func", "StagingSweeper.sweep").Int("removed", removed).Msg("error sweeping staged contracts")
		return removed
	}

	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("stale staged contracts removed")
	}
	return removed
}
