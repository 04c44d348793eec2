package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cargo-settings/internal/config"
	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/mock"
	"github.com/MKhiriev/cargo-settings/internal/store"
	"github.com/MKhiriev/cargo-settings/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.UnixMilli(1700000000000)

func newTestAttachmentHandler(files store.ContractFileStorage) *attachmentHandler {
	a := newAttachmentHandler(files, "/uploads/contracts/")
	a.now = func() time.Time { return fixedNow }
	return a
}

func TestContractExtension(t *testing.T) {
	tests := map[string]string{
		"contract.pdf":     ".pdf",
		"Contract.DOCX":    ".DOCX",
		"archive.tar.gz":   ".gz",
		"no-extension":     "",
		"trailing.":        "",
		`C:\docs\scan.jpg`: ".jpg",
		"../../etc/passwd": "",
		"evil.p/df":        "",
		"weird.p%20f":      "",
	}
	tests["long."+strings.Repeat("x", 20)] = ""

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, contractExtension(name))
		})
	}
}

func TestAttachmentHandler_StageWithoutUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockContractFileStorage(ctrl)

	pending, err := newTestAttachmentHandler(files).stage(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestAttachmentHandler_StageBuildsReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockContractFileStorage(ctrl)
	staged := store.StagedFile{Path: "/tmp/staging/abc", Size: 3}
	gomock.InOrder(
		files.EXPECT().Stage(gomock.Any(), gomock.Any()).Return(staged, nil),
		files.EXPECT().Reserve(gomock.Any(), "1700000000000.pdf").Return(nil),
	)

	pending, err := newTestAttachmentHandler(files).stage(context.Background(), &models.ContractUpload{
		OriginalName: "contract.pdf",
		Content:      strings.NewReader("pdf"),
	})

	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, staged, pending.staged)
	assert.Equal(t, "1700000000000.pdf", pending.fileName)
	assert.Equal(t, "/uploads/contracts/1700000000000.pdf", pending.reference)
}

func TestAttachmentHandler_StageSkipsTakenNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockContractFileStorage(ctrl)
	staged := store.StagedFile{Path: "/tmp/staging/abc", Size: 3}
	gomock.InOrder(
		files.EXPECT().Stage(gomock.Any(), gomock.Any()).Return(staged, nil),
		files.EXPECT().Reserve(gomock.Any(), "1700000000000.pdf").Return(store.ErrContractNameTaken),
		files.EXPECT().Reserve(gomock.Any(), "1700000000001.pdf").Return(store.ErrContractNameTaken),
		files.EXPECT().Reserve(gomock.Any(), "1700000000002.pdf").Return(nil),
	)

	pending, err := newTestAttachmentHandler(files).stage(context.Background(), &models.ContractUpload{
		OriginalName: "contract.pdf",
		Content:      strings.NewReader("pdf"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/contracts/1700000000002.pdf", pending.reference)
}

func TestAttachmentHandler_StageReserveErrorDiscards(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockContractFileStorage(ctrl)
	staged := store.StagedFile{Path: "/tmp/staging/abc", Size: 3}
	gomock.InOrder(
		files.EXPECT().Stage(gomock.Any(), gomock.Any()).Return(staged, nil),
		files.EXPECT().Reserve(gomock.Any(), "1700000000000.pdf").Return(store.ErrReservingContract),
		files.EXPECT().Discard(gomock.Any(), staged).Return(nil),
	)

	pending, err := newTestAttachmentHandler(files).stage(context.Background(), &models.ContractUpload{
		OriginalName: "contract.pdf",
		Content:      strings.NewReader("pdf"),
	})

	assert.ErrorIs(t, err, store.ErrReservingContract)
	assert.Nil(t, pending)
}

func TestAttachmentHandler_SameMillisecondUploadsStayDistinct(t *testing.T) {
	root := t.TempDir()
	files, err := store.NewContractFileStorage(config.Files{
		ContractsDir: filepath.Join(root, "contracts"),
		StagingDir:   filepath.Join(root, ".staging"),
	}, logger.Nop())
	require.NoError(t, err)

	a := newTestAttachmentHandler(files)
	ctx := context.Background()

	publish := func(name, body string) string {
		p, err := a.stage(ctx, &models.ContractUpload{OriginalName: name, Content: strings.NewReader(body)})
		require.NoError(t, err)
		require.NoError(t, a.commit(ctx, p))
		return p.fileName
	}

	filialName := publish("filialA.pdf", "A")
	adminName := publish("admin.pdf", "B")

	assert.NotEqual(t, filialName, adminName)

	filialBody, err := os.ReadFile(filepath.Join(root, "contracts", filialName))
	require.NoError(t, err)
	assert.Equal(t, "A", string(filialBody))

	adminBody, err := os.ReadFile(filepath.Join(root, "contracts", adminName))
	require.NoError(t, err)
	assert.Equal(t, "B", string(adminBody))
}

func TestAttachmentHandler_StageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockContractFileStorage(ctrl)
	files.EXPECT().Stage(gomock.Any(), gomock.Any()).Return(store.StagedFile{}, store.ErrWritingContract)

	_, err := newTestAttachmentHandler(files).stage(context.Background(), &models.ContractUpload{
		OriginalName: "contract.pdf",
		Content:      strings.NewReader("pdf"),
	})

	assert.ErrorIs(t, err, store.ErrWritingContract)
}

func TestAttachmentHandler_CommitFailureDiscards(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockContractFileStorage(ctrl)
	pending := &pendingContract{staged: store.StagedFile{Path: "/tmp/staging/abc"}, fileName: "1.pdf"}

	gomock.InOrder(
		files.EXPECT().Commit(gomock.Any(), pending.staged, "1.pdf").Return(store.ErrCommittingContract),
		files.EXPECT().Discard(gomock.Any(), pending.staged).Return(nil),
		files.EXPECT().Release(gomock.Any(), "1.pdf").Return(nil),
	)

	err := newTestAttachmentHandler(files).commit(context.Background(), pending)

	assert.ErrorIs(t, err, store.ErrCommittingContract)
}

func TestAttachmentHandler_NilPendingIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockContractFileStorage(ctrl)
	a := newTestAttachmentHandler(files)

	assert.NoError(t, a.commit(context.Background(), nil))
	a.discard(context.Background(), nil)
}

func TestAttachmentHandler_DiscardErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockContractFileStorage(ctrl)
	pending := &pendingContract{staged: store.StagedFile{Path: "/tmp/staging/abc"}}
	files.EXPECT().Discard(gomock.Any(), pending.staged).Return(errors.New("permission denied"))

	newTestAttachmentHandler(files).discard(context.Background(), pending)
}
