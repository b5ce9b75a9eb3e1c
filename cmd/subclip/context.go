package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"subclip/internal/config"
	"subclip/internal/cuecache"
	"subclip/internal/logging"
	"subclip/internal/media/ffmpeg"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the run logger from config, tagged with a unique run
// id so interleaved runs sharing a log stream stay distinguishable.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.loggerOnce.Do(func() {
		logger, err := logging.New(os.Stderr, logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger.With(logging.String("run_id", uuid.NewString()))
	})
	return c.logger, nil
}

func (c *commandContext) ffmpegClient() (ffmpeg.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return ffmpeg.Client{}, err
	}
	return ffmpeg.NewClient(cfg.FFmpeg.FFmpegBinary, cfg.FFmpeg.FFprobeBinary), nil
}

func (c *commandContext) openCueCache() (*cuecache.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	return cuecache.Open(filepath.Join(cfg.Paths.CacheDir, "cues.db"))
}
