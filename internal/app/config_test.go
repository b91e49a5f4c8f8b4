package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg := ReadConfig("")

	assert.Equal(t, defaultDataDir, cfg.DataDir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, defaultRedirectURL, cfg.GoogleRedirectURL)
	assert.Empty(t, cfg.GoogleClientID)
}

func TestReadConfigFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"data_dir": "/tmp/boards",
		"backend": "sqlite",
		"google_client_id": "client-123"
	}`), 0o644))

	cfg := ReadConfig(path)

	assert.Equal(t, "/tmp/boards", cfg.DataDir)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "client-123", cfg.GoogleClientID)
	assert.Equal(t, defaultRedirectURL, cfg.GoogleRedirectURL, "missing fields fall back to defaults")
}

func TestReadConfigBrokenJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	cfg := ReadConfig(path)

	assert.Equal(t, defaultDataDir, cfg.DataDir)
	assert.Equal(t, BackendFile, cfg.Backend)
}

func TestReadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/taskboard")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("GOOGLE_CLIENT_ID", "env-client")
	t.Setenv("GOOGLE_CLIENT_SECRET", "env-secret")

	cfg := ReadConfig("")

	assert.Equal(t, "/var/lib/taskboard", cfg.DataDir)
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, "env-client", cfg.GoogleClientID)
	assert.Equal(t, "env-secret", cfg.GoogleClientSecret)
}

func TestReadConfigUnknownBackendFallsBack(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "carrier-pigeon")

	cfg := ReadConfig("")

	assert.Equal(t, BackendFile, cfg.Backend)
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name    string
		dataDir string
		backend string
		want    Config
	}{
		{
			name:    "both set",
			dataDir: "/data",
			backend: "sqlite",
			want:    Config{DataDir: "/data", Backend: "sqlite"},
		},
		{
			name: "empty flags keep config values",
			want: Config{DataDir: defaultDataDir, Backend: BackendFile},
		},
		{
			name:    "only backend",
			backend: "memory",
			want:    Config{DataDir: defaultDataDir, Backend: "memory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DataDir: defaultDataDir, Backend: BackendFile}

			cfg.ApplyOverrides(tt.dataDir, tt.backend)

			assert.Equal(t, tt.want.DataDir, cfg.DataDir)
			assert.Equal(t, tt.want.Backend, cfg.Backend)
		})
	}
}
