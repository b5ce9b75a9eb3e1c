package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFind(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFind() error {
	if c.Find.LeadPaddingSeconds < 0 {
		return errors.New("find.lead_padding_seconds must not be negative")
	}
	if c.Find.TrailPaddingSeconds < 0 {
		return errors.New("find.trail_padding_seconds must not be negative")
	}
	if c.Find.Workers < 0 {
		return errors.New("find.workers must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
