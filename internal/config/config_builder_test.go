package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder_FailsWithoutDSN verifies that the DSN has no
// default and is required.
func TestBuild_EmptyBuilder_FailsWithoutDSN(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_AppliesDefaults verifies that only the DSN is needed and every
// other setting falls back to its default.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://x"}}})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.EqualValues(t, DefaultMaxUploadSize, cfg.Server.MaxUploadSize)
	assert.Equal(t, DefaultContractsDir, cfg.Storage.Files.ContractsDir)
	assert.Equal(t, DefaultStagingDir, cfg.Storage.Files.StagingDir)
	assert.Equal(t, DefaultPublicPrefix, cfg.Storage.Files.PublicPrefix)
	assert.Equal(t, DefaultStagingSweepInterval, cfg.Workers.StagingSweepInterval)
	assert.Equal(t, DefaultStagingMaxAge, cfg.Workers.StagingMaxAge)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://x"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "postgres://x", cfg.Storage.DB.DSN)
}

// TestBuild_LaterSourceWins verifies that a non-zero value of a later
// source overrides an earlier one, while zero values do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://env"}},
			Server:  Server{HTTPAddress: "localhost:1000"},
		},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://flags"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://flags", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:1000", cfg.Server.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "postgres://env", b.configs[0].Storage.DB.DSN)
}

// TestWithEnv_InvalidValueSetsError verifies that a malformed env value is
// recorded on the builder instead of panicking.
func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-d", "postgres://flags", "-f", "/srv/contracts"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://flags", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, "/srv/contracts", b.configs[0].Storage.Files.ContractsDir)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that withJSON is a no-op without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFileFromEarlierSource verifies that the path found in an
// earlier source is loaded and that the file overrides earlier values.
func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://json"}},
		"server":  map[string]any{"request_timeout": "5s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: path,
		Storage:      Storage{DB: DB{DSN: "postgres://env"}},
	})
	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

// TestWithJSON_MissingFileSetsError verifies that a missing file is reported.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
}
