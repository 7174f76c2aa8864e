package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/xanalytics/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, cfg.Latency.Std())
	assert.Equal(t, 100*time.Millisecond, cfg.RevealDelay.Std())
	assert.Equal(t, 16*time.Millisecond, cfg.FrameInterval.Std())
	assert.Equal(t, profile.ModeFixed, cfg.GeneratorMode())
	assert.Empty(t, cfg.Logging.File)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "latency: 250ms\ngenerator:\n  mode: sequence\nlogging:\n  level: debug\n  file: /tmp/x.log\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Latency.Std())
	assert.Equal(t, 100*time.Millisecond, cfg.RevealDelay.Std(), "unset keys keep defaults")
	assert.Equal(t, profile.ModeSequence, cfg.GeneratorMode())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/x.log", cfg.Logging.File)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"duration.yaml":  "latency: soon\n",
		"mode.yaml":      "generator:\n  mode: xorshift\n",
		"frame.yaml":     "frame_interval: 0s\n",
		"latency.yaml":   "latency: 0s\n",
		"reveal.yaml":    "reveal_delay: 0s\n",
		"negative.yaml":  "latency: -1s\n",
		"malformed.yaml": "latency: [\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XANALYTICS_LATENCY", "2s")
	t.Setenv("XANALYTICS_GENERATOR", "sequence")
	t.Setenv("XANALYTICS_LOG_FILE", "/tmp/env.log")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Latency.Std())
	assert.Equal(t, profile.ModeSequence, cfg.GeneratorMode())
	assert.Equal(t, "/tmp/env.log", cfg.Logging.File)
}

func TestEnvOverrideBadLatency(t *testing.T) {
	t.Setenv("XANALYTICS_LATENCY", "later")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrideZeroLatency(t *testing.T) {
	t.Setenv("XANALYTICS_LATENCY", "0s")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "latency must be positive")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Latency = Duration(3 * time.Second)
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
