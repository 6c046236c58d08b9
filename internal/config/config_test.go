package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CANVAS_BASE_URL", "https://school.instructure.com")
	t.Setenv("CANVAS_TOKEN", "canvas-token")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "refresh-token")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://school.instructure.com", cfg.Canvas.BaseURL)
	assert.Equal(t, "canvas-token", cfg.Canvas.Token)
	assert.Equal(t, "client-id", cfg.Google.ClientID)
	assert.Equal(t, "client-secret", cfg.Google.ClientSecret)
	assert.Equal(t, "refresh-token", cfg.Google.RefreshToken)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
canvas:
  base_url: https://school.instructure.com
  token: file-token
google:
  client_id: file-client-id
metrics:
  addr: ":9999"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "canvascal.yaml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Canvas.Token)
	assert.Equal(t, "file-client-id", cfg.Google.ClientID)
	assert.Equal(t, ":9999", cfg.Metrics.Addr)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `
canvas:
  base_url: https://file.instructure.com
  token: file-token
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "canvascal.yaml"), []byte(content), 0o600))
	t.Setenv("CANVAS_TOKEN", "env-token")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://file.instructure.com", cfg.Canvas.BaseURL)
	assert.Equal(t, "env-token", cfg.Canvas.Token)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CANVAS_BASE_URL", "https://school.instructure.com")
	t.Setenv("CANVAS_TOKEN", "tok")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoad_MissingRequiredValues(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "CANVAS_BASE_URL")
	assert.Contains(t, err.Error(), "CANVAS_TOKEN")
}
