// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"strings"
	"time"
)

// Defaults applied by setDefaults to values left unset by every source.
const (
	DefaultHTTPAddress          = ":8080"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultMaxUploadSize        = 32 << 20
	DefaultContractsDir         = "uploads/contracts"
	DefaultStagingDir           = "uploads/.staging"
	DefaultPublicPrefix         = "/uploads/contracts"
	DefaultStagingSweepInterval = 10 * time.Minute
	DefaultStagingMaxAge        = time.Hour
	DefaultVersion              = "dev"
)

// setDefaults fills every zero-valued setting that has a sensible default.
// The DSN has none and stays empty.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.Storage.Files.ContractsDir == "" {
		cfg.Storage.Files.ContractsDir = DefaultContractsDir
	}
	if cfg.Storage.Files.StagingDir == "" {
		cfg.Storage.Files.StagingDir = DefaultStagingDir
	}
	if cfg.Storage.Files.PublicPrefix == "" {
		cfg.Storage.Files.PublicPrefix = DefaultPublicPrefix
	}
	cfg.Storage.Files.PublicPrefix = "/" + strings.Trim(cfg.Storage.Files.PublicPrefix, "/")
	if cfg.Workers.StagingSweepInterval == 0 {
		cfg.Workers.StagingSweepInterval = DefaultStagingSweepInterval
	}
	if cfg.Workers.StagingMaxAge == 0 {
		cfg.Workers.StagingMaxAge = DefaultStagingMaxAge
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	files := cfg.Storage.Files
	if filepath.Clean(files.ContractsDir) == filepath.Clean(files.StagingDir) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.MaxUploadSize < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.StagingSweepInterval < 0 || cfg.Workers.StagingMaxAge < 0 {
		return ErrInvalidWorkerConfigs
	}

	// a staged upload lives at most as long as the request writing it
	if cfg.Workers.StagingMaxAge <= cfg.Server.RequestTimeout {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
