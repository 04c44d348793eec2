// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/cargo-settings/internal/config"
	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/utils"
)

// contractFileStorage keeps contract documents on the local filesystem.
//
// Uploads are written under stagingDir with a random name. Their public
// name is claimed in contractsDir by Reserve and the content is moved there
// by Commit. Both directories must live on the same
// filesystem so that Commit is a single rename.
type contractFileStorage struct {
	contractsDir string
	stagingDir   string
	newName      func() string
	logger       *logger.Logger
}

// NewContractFileStorage creates both directories when they are missing.
func NewContractFileStorage(cfg config.Files, logger *logger.Logger) (ContractFileStorage, error) {
	for _, dir := range []string{cfg.ContractsDir, cfg.StagingDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Err(err).Str("func", "NewContractFileStorage").Str("dir", dir).Msg("error creating directory")
			return nil, fmt.Errorf("error creating directory %q: %w", dir, err)
		}
	}

	logger.Debug().
		Str("contracts_dir", cfg.ContractsDir).
		Str("staging_dir", cfg.StagingDir).
		Msg("creating contract file storage")

	return &contractFileStorage{
		contractsDir: cfg.ContractsDir,
		stagingDir:   cfg.StagingDir,
		newName:      utils.NewUUIDGenerator().Generate,
		logger:       logger,
	}, nil
}

// Stage streams content into a new file of the staging area. A partially
// written file is removed before the error is returned.
func (c *contractFileStorage) Stage(ctx context.Context, content io.Reader) (StagedFile, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return StagedFile{}, err
	}

	path := filepath.Join(c.stagingDir, c.newName())
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.Err(err).Str("func", "contractFileStorage.Stage").Msg("error creating staged file")
		return StagedFile{}, fmt.Errorf("%w: %w", ErrWritingContract, err)
	}

	size, copyErr := io.Copy(file, content)
	closeErr := file.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		log.Err(err).Str("func", "contractFileStorage.Stage").Str("path", path).Msg("error writing staged file")
		_ = os.Remove(path)
		return StagedFile{}, fmt.Errorf("%w: %w", ErrWritingContract, err)
	}

	log.Debug().Str("path", path).Int64("size", size).Msg("contract staged")
	return StagedFile{Path: path, Size: size}, nil
}

// Reserve claims fileName inside the contracts directory by creating an
// empty placeholder. It fails with [ErrContractNameTaken] when a file with
// that name already exists.
func (c *contractFileStorage) Reserve(ctx context.Context, fileName string) error {
	target := filepath.Join(c.contractsDir, filepath.Base(fileName))
	file, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %w", ErrContractNameTaken, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "contractFileStorage.Reserve").
			Str("target", target).
			Msg("error reserving contract name")
		return fmt.Errorf("%w: %w", ErrReservingContract, err)
	}

	return file.Close()
}

// Release removes a reservation that will not be committed. Releasing a
// name that does not exist is not an error.
func (c *contractFileStorage) Release(ctx context.Context, fileName string) error {
	target := filepath.Join(c.contractsDir, filepath.Base(fileName))
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "contractFileStorage.Release").
			Str("target", target).
			Msg("error releasing contract name")
		return err
	}

	return nil
}

// Commit publishes a staged file under a name previously taken with
// Reserve, replacing the placeholder.
func (c *contractFileStorage) Commit(ctx context.Context, staged StagedFile, fileName string) error {
	log := logger.FromContext(ctx)

	if staged.Path == "" {
		return ErrContractNotStaged
	}

	target := filepath.Join(c.contractsDir, filepath.Base(fileName))
	if _, err := os.Stat(target); err != nil {
		log.Err(err).Str("func", "contractFileStorage.Commit").Str("target", target).Msg("contract name was not reserved")
		return fmt.Errorf("%w: %w", ErrCommittingContract, err)
	}

	if err := os.Rename(staged.Path, target); err != nil {
		log.Err(err).
			Str("func", "contractFileStorage.Commit").
			Str("staged", staged.Path).
			Str("target", target).
			Msg("error committing contract")
		return fmt.Errorf("%w: %w", ErrCommittingContract, err)
	}

	log.Info().Str("path", target).Msg("contract committed")
	return nil
}

// Discard removes a staged file. Discarding an already removed file is not
// an error.
func (c *contractFileStorage) Discard(ctx context.Context, staged StagedFile) error {
	if staged.Path == "" {
		return ErrContractNotStaged
	}

	if err := os.Remove(staged.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "contractFileStorage.Discard").
			Str("staged", staged.Path).
			Msg("error discarding staged contract")
		return err
	}

	return nil
}

func (c *contractFileStorage) SweepStaged(ctx context.Context, olderThan time.Time) (int, error) {
	entries, err := os.ReadDir(c.stagingDir)
	if err != nil {
		return 0, fmt.Errorf("error reading staging directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return removed, err
		}
		if !entry.Type().IsRegular() {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil || !info.ModTime().Before(olderThan) {
			continue
		}

		path := filepath.Join(c.stagingDir, entry.Name())
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			c.logger.Err(rmErr).Str("func", "contractFileStorage.SweepStaged").Str("path", path).Msg("error removing stale staged file")
			continue
		}
		removed++
	}

	return removed, nil
}
