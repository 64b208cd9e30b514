package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	a := c.Analysis
	if a.Radius < 0 {
		return errors.New("analysis.radius must not be negative")
	}
	if a.Radius > 64 {
		return errors.New("analysis.radius exceeds the hash width of 64 bits")
	}
	if a.MaxGapSeconds <= 0 {
		return errors.New("analysis.max_gap_seconds must be positive")
	}
	if a.MinDurationSeconds < 0 {
		return errors.New("analysis.min_duration_seconds must not be negative")
	}
	if a.FPS < 0 {
		return errors.New("analysis.fps must not be negative (0 means auto-detect)")
	}
	if a.WindowSeconds < 0 {
		return errors.New("analysis.window_seconds must not be negative (0 decodes the whole file)")
	}
	if a.SampleWidth <= 0 || a.SampleHeight <= 0 {
		return errors.New("analysis.sample_width and analysis.sample_height must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
