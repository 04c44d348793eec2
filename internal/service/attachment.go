// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/store"
	"github.com/MKhiriev/cargo-settings/models"
)

const (
	maxExtensionLength = 16

	// maxNameAttempts bounds how many consecutive milliseconds are tried
	// when the current one is already taken.
	maxNameAttempts = 1000
)

// pendingContract is a staged upload together with the name it will be
// published under.
type pendingContract struct {
	staged    store.StagedFile
	fileName  string
	reference string
}

// attachmentHandler runs the stage, persist, commit sequence for contract
// uploads. The record is saved between stage and commit by the caller.
type attachmentHandler struct {
	files        store.ContractFileStorage
	publicPrefix string
	now          func() time.Time
}

func newAttachmentHandler(files store.ContractFileStorage, publicPrefix string) *attachmentHandler {
	return &attachmentHandler{
		files:        files,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
		now:          time.Now,
	}
}

// stage writes the upload to the staging area and reserves the name it will
// be published under. It returns nil when the request carried no file.
func (a *attachmentHandler) stage(ctx context.Context, upload *models.ContractUpload) (*pendingContract, error) {
	if upload == nil || upload.Content == nil {
		return nil, nil
	}

	staged, err := a.files.Stage(ctx, upload.Content)
	if err != nil {
		return nil, fmt.Errorf("error staging contract: %w", err)
	}

	fileName, err := a.reserve(ctx, contractExtension(upload.OriginalName))
	if err != nil {
		a.discard(ctx, &pendingContract{staged: staged})
		return nil, err
	}

	return &pendingContract{
		staged:    staged,
		fileName:  fileName,
		reference: a.publicPrefix + "/" + fileName,
	}, nil
}

// reserve claims <unix-millis><ext>, moving to the next millisecond while
// the name is taken by an earlier upload.
func (a *attachmentHandler) reserve(ctx context.Context, ext string) (string, error) {
	millis := a.now().UnixMilli()

	for i := range int64(maxNameAttempts) {
		fileName := strconv.FormatInt(millis+i, 10) + ext

		err := a.files.Reserve(ctx, fileName)
		if err == nil {
			return fileName, nil
		}
		if !errors.Is(err, store.ErrContractNameTaken) {
			return "", fmt.Errorf("error reserving contract name: %w", err)
		}
	}

	return "", fmt.Errorf("error reserving contract name: %w", store.ErrContractNameTaken)
}

// commit publishes a staged upload after its record was saved.
func (a *attachmentHandler) commit(ctx context.Context, p *pendingContract) error {
	if p == nil {
		return nil
	}

	if err := a.files.Commit(ctx, p.staged, p.fileName); err != nil {
		a.discard(ctx, p)
		return fmt.Errorf("error publishing contract: %w", err)
	}
	return nil
}

// discard drops a staged upload whose record could not be saved, together
// with its reserved name.
func (a *attachmentHandler) discard(ctx context.Context, p *pendingContract) {
	if p == nil {
		return
	}

	log := logger.FromContext(ctx)

	if err := a.files.Discard(ctx, p.staged); err != nil {
		// the staging sweeper removes it later
		log.Err(err).
			Str("func", "attachmentHandler.discard").
			Str("staged", p.staged.Path).
			Msg("error discarding staged contract")
	}

	if p.fileName == "" {
		return
	}
	if err := a.files.Release(ctx, p.fileName); err != nil {
		log.Err(err).
			Str("func", "attachmentHandler.discard").
			Str("file_name", p.fileName).
			Msg("error releasing contract name")
	}
}

// contractExtension keeps the extension of the client file name when it is
// a plain alphanumeric suffix such as ".pdf".
func contractExtension(originalName string) string {
	// client names may come with Windows separators
	base := originalName[strings.LastIndexAny(originalName, `/\`)+1:]
	ext := filepath.Ext(base)
	if len(ext) < 2 || len(ext) > maxExtensionLength {
		return ""
	}

	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ""
		}
	}
	return ext
}
