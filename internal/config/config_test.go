package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)

	assert.Equal(t, "rk3588", cfg.Detector.Platform)
	assert.Equal(t, 640, cfg.Detector.InputWidth)
	assert.Equal(t, 640, cfg.Detector.InputHeight)
	assert.InDelta(t, 0.25, cfg.Detector.BoxThreshold, 1e-6)
	assert.InDelta(t, 0.45, cfg.Detector.NMSThreshold, 1e-6)
	assert.Equal(t, 64, cfg.Detector.MaxObjects)

	assert.Equal(t, "output.mp4", cfg.Video.OutputPath)
	assert.Equal(t, "avc1", cfg.Video.FourCC)
	assert.Equal(t, 30.0, cfg.Video.DefaultFPS)

	assert.False(t, cfg.Debug.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test-config-*.yaml")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Remove(tmpfile.Name()))
	}()

	content := `
logging:
  level: debug
  format: json
  output: stdout
detector:
  platform: rk3576
  input_width: 416
  input_height: 416
video:
  output_path: annotated.mp4
  fourcc: mp4v
  default_fps: 25
`
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "rk3576", cfg.Detector.Platform)
	assert.Equal(t, 416, cfg.Detector.InputWidth)
	assert.Equal(t, "annotated.mp4", cfg.Video.OutputPath)
	assert.Equal(t, "mp4v", cfg.Video.FourCC)
	assert.Equal(t, 25.0, cfg.Video.DefaultFPS)

	// Unset keys still fall back to defaults
	assert.InDelta(t, 0.25, cfg.Detector.BoxThreshold, 1e-6)
	assert.Equal(t, "/metrics", cfg.Debug.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LENS_DETECTOR_PLATFORM", "rk3566")
	t.Setenv("LENS_VIDEO_OUTPUT_PATH", "env.mp4")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "rk3566", cfg.Detector.Platform)
	assert.Equal(t, "env.mp4", cfg.Video.OutputPath)
}

func TestLoadInvalidConfig(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test-config-*.yaml")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Remove(tmpfile.Name()))
	}()

	_, err = tmpfile.WriteString("video:\n  fourcc: toolong\n")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	_, err = Load(tmpfile.Name())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fourcc")
}
