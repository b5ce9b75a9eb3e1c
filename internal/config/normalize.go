package config

import "strings"

// normalize expands paths and fills in blanks so validation and downstream
// consumers see canonical values.
func (c *Config) normalize() error {
	var err error
	if c.Paths.CacheDir, err = expandPath(valueOr(c.Paths.CacheDir, defaultCacheDir)); err != nil {
		return err
	}
	if c.Paths.OutputDir, err = expandPath(valueOr(c.Paths.OutputDir, defaultOutputDir)); err != nil {
		return err
	}
	c.FFmpeg.FFmpegBinary = valueOr(c.FFmpeg.FFmpegBinary, defaultFFmpegBinary)
	c.FFmpeg.FFprobeBinary = valueOr(c.FFmpeg.FFprobeBinary, defaultFFprobeBinary)
	c.FFmpeg.Profile = strings.ToLower(valueOr(c.FFmpeg.Profile, defaultProfile))
	c.Logging.Level = strings.ToLower(valueOr(c.Logging.Level, defaultLogLevel))
	c.Logging.Format = strings.ToLower(valueOr(c.Logging.Format, defaultLogFormat))
	return nil
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
