package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Detector DetectorConfig `mapstructure:"detector"`
	Video    VideoConfig    `mapstructure:"video"`
	Debug    DebugConfig    `mapstructure:"debug"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json or text
	Output     string `mapstructure:"output"` // stdout, stderr, or file path
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

type DetectorConfig struct {
	// Platform selects the RKNN NPU target (rk3588, rk3576, ...).
	Platform string `mapstructure:"platform"`

	// LabelsFile optionally overrides the built-in COCO class names.
	LabelsFile string `mapstructure:"labels_file"`

	// Fallback model input geometry, used when the model does not
	// report its input tensor dimensions.
	InputWidth  int `mapstructure:"input_width"`
	InputHeight int `mapstructure:"input_height"`

	// YOLO post-processing parameters.
	BoxThreshold float32 `mapstructure:"box_threshold"`
	NMSThreshold float32 `mapstructure:"nms_threshold"`
	MaxObjects   int     `mapstructure:"max_objects"`
}

type VideoConfig struct {
	OutputPath string  `mapstructure:"output_path"`
	FourCC     string  `mapstructure:"fourcc"`
	DefaultFPS float64 `mapstructure:"default_fps"` // used when the source reports no rate
}

type DebugConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Port    int    `mapstructure:"port"`
}

// Load reads configuration from the given file path, applying defaults and
// LENS_* environment variable overrides. An empty path loads defaults only.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Environment variables
	v.SetEnvPrefix("LENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.max_size", 100)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age", 30)

	// Detector defaults
	v.SetDefault("detector.platform", "rk3588")
	v.SetDefault("detector.labels_file", "")
	v.SetDefault("detector.input_width", 640)
	v.SetDefault("detector.input_height", 640)
	v.SetDefault("detector.box_threshold", 0.25)
	v.SetDefault("detector.nms_threshold", 0.45)
	v.SetDefault("detector.max_objects", 64)

	// Video sink defaults
	v.SetDefault("video.output_path", "output.mp4")
	v.SetDefault("video.fourcc", "avc1")
	v.SetDefault("video.default_fps", 30.0)

	// Debug endpoint defaults
	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.path", "/metrics")
	v.SetDefault("debug.port", 9090)
}
