package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/schedulers"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 8081
log_level: debug
scheduler:
  round_robin:
    time_quantum: 4
  max_iterations: 500
telemetry:
  enabled: true
  endpoint: collector:4317
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, schedulers.Options{TimeQuantum: 4, MaxIterations: 500}, cfg.Options())
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, "cpusched", cfg.Telemetry.ServiceName)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, 1_000_000, cfg.MaxIterations)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")
	path := writeConfig(t, "port: 9000\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n"))
	assert.ErrorContains(t, err, "time_quantum must be positive")

	_, err = Load(writeConfig(t, "port: 0\n"))
	assert.ErrorContains(t, err, "port 0 out of range")
}
