package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchilly/sscan/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(1<<20), cfg.Scan.MaxInputBytes)
	assert.Equal(t, 1000, cfg.Scan.MaxInputs)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SSCAN_SERVER_PORT", ":9090")
	t.Setenv("SSCAN_SCAN_MAX_INPUTS", "5")
	t.Setenv("SSCAN_OUTPUT_FORMAT", "tsv")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Scan.MaxInputs)
	assert.Equal(t, config.FormatTSV, cfg.Output.Format)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sscan.yaml")
	content := "server:\n  port: \":7070\"\n  write_timeout: 3s\nscan:\n  max_line_bytes: 128\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 128, cfg.Scan.MaxLineBytes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidOutputFormat(t *testing.T) {
	t.Setenv("SSCAN_OUTPUT_FORMAT", "xml")

	_, err := config.Load("")
	assert.ErrorContains(t, err, "invalid output.format")
}
