package config

import (
	"fmt"
)

func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := c.Detector.Validate(); err != nil {
		return fmt.Errorf("detector config: %w", err)
	}

	if err := c.Video.Validate(); err != nil {
		return fmt.Errorf("video config: %w", err)
	}

	if err := c.Debug.Validate(); err != nil {
		return fmt.Errorf("debug config: %w", err)
	}

	return nil
}

func (l *LoggingConfig) Validate() error {
	switch l.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	if l.Format != "json" && l.Format != "text" {
		return fmt.Errorf("invalid log format: %s", l.Format)
	}

	if l.MaxSize <= 0 {
		return fmt.Errorf("max_size must be positive")
	}

	return nil
}

func (d *DetectorConfig) Validate() error {
	if d.Platform == "" {
		return fmt.Errorf("platform is required")
	}

	if d.InputWidth <= 0 || d.InputHeight <= 0 {
		return fmt.Errorf("invalid input geometry: %dx%d", d.InputWidth, d.InputHeight)
	}

	if d.BoxThreshold <= 0 || d.BoxThreshold > 1 {
		return fmt.Errorf("box_threshold must be in (0, 1]: %f", d.BoxThreshold)
	}

	if d.NMSThreshold <= 0 || d.NMSThreshold > 1 {
		return fmt.Errorf("nms_threshold must be in (0, 1]: %f", d.NMSThreshold)
	}

	if d.MaxObjects <= 0 {
		return fmt.Errorf("max_objects must be positive")
	}

	return nil
}

func (v *VideoConfig) Validate() error {
	if v.OutputPath == "" {
		return fmt.Errorf("output_path is required")
	}

	if len(v.FourCC) != 4 {
		return fmt.Errorf("fourcc must be exactly 4 characters: %q", v.FourCC)
	}

	if v.DefaultFPS <= 0 {
		return fmt.Errorf("default_fps must be positive: %f", v.DefaultFPS)
	}

	return nil
}

func (d *DebugConfig) Validate() error {
	if !d.Enabled {
		return nil
	}

	if d.Port < 1 || d.Port > 65535 {
		return fmt.Errorf("invalid debug port: %d", d.Port)
	}

	if d.Path == "" {
		return fmt.Errorf("debug path is required when debug endpoint is enabled")
	}

	return nil
}
