package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.DataDir == "" {
		return fmt.Errorf("paths.data_dir must not be empty")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if c.Project.FPS <= 0 {
		return fmt.Errorf("project.fps must be a positive integer, got %d", c.Project.FPS)
	}
	if c.Project.Width <= 0 || c.Project.Height <= 0 {
		return fmt.Errorf("project dimensions must be positive, got %dx%d", c.Project.Width, c.Project.Height)
	}
	return nil
}
